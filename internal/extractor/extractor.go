package extractor

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

// Fetcher fetches source pages.
type Fetcher interface {
	FetchPage(context.Context, string) (io.ReadCloser, error)
}

// Extractor turns one source page into structured package fields. It carries
// no retry logic; a hard failure is surfaced only when the fetch fails or the
// page is fundamentally unparseable. A missing field is a soft miss: partial
// extractions are the normal case.
type Extractor struct {
	fetcher Fetcher
}

// NewExtractor returns new Extractor.
func NewExtractor(fetcher Fetcher) *Extractor {
	return &Extractor{
		fetcher: fetcher,
	}
}

// Extract fetches sourceURL, detects which page family it is and parses the
// package fields with the matching rules.
func (e *Extractor) Extract(ctx context.Context, sourceURL string) (*models.Extraction, error) {
	page, err := DetectSource(sourceURL)
	if err != nil {
		return nil, err
	}

	body, err := e.fetcher.FetchPage(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("can't fetch source page: %w", err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("can't parse source page: %w", err)
	}

	if strings.TrimSpace(doc.Find("body").Text()) == "" {
		return nil, ErrEmptyDocument
	}

	switch page.Kind {
	case SourceReseller:
		return parseResellerPage(doc), nil
	default:
		return parseCatalogPage(doc), nil
	}
}

// parseCatalogPage reads the standard /viaje/ page: price and taxes in the
// pricing box, "Incluye" / "No incluye" headings followed by lists, day
// blocks in the itinerary section and a departures list.
func parseCatalogPage(doc *goquery.Document) *models.Extraction {
	extraction := models.Extraction{}

	if price, err := parseMoney(doc.Find(".mt-precio .precio-monto").First().Text()); err == nil {
		extraction.PriceUSD = lo.ToPtr(price)
	}
	if taxes, err := parseMoney(doc.Find(".mt-precio .impuestos-monto").First().Text()); err == nil {
		extraction.TaxesUSD = lo.ToPtr(taxes)
	}

	doc.Find("h3").Each(func(_ int, heading *goquery.Selection) {
		label := normalizeLabel(heading.Text())
		switch {
		case strings.Contains(label, "no incluye"):
			extraction.NotIncludes = listItems(heading.NextAllFiltered("ul").First())
		case strings.Contains(label, "incluye"):
			extraction.Includes = listItems(heading.NextAllFiltered("ul").First())
		}
	})

	doc.Find("div.itinerario div.dia").Each(func(_ int, day *goquery.Selection) {
		if parsed := parseItineraryDay(
			day.Find("span.numero").First().Text(),
			day.Find("h4").First().Text(),
			day.Find("p").First().Text(),
		); parsed != nil {
			extraction.Itinerary = append(extraction.Itinerary, *parsed)
		}
	})

	doc.Find("div.salidas li").Each(func(_ int, departure *goquery.Selection) {
		if date, ok := parseDepartureDate(departure.Text()); ok {
			extraction.Departures = append(extraction.Departures, date)
		}
	})

	return &extraction
}

// parseResellerPage reads the alternate paquete.php page: labelled cells in
// the detail table, day rows in the itinerary table and departure options.
func parseResellerPage(doc *goquery.Document) *models.Extraction {
	extraction := models.Extraction{}

	doc.Find("table.detalle tr").Each(func(_ int, row *goquery.Selection) {
		label := normalizeLabel(row.Find("td.etiqueta").First().Text())
		value := row.Find("td.valor").First()

		switch {
		case strings.HasPrefix(label, "precio"):
			if price, err := parseMoney(value.Text()); err == nil {
				extraction.PriceUSD = lo.ToPtr(price)
			}
		case strings.HasPrefix(label, "impuestos"):
			if taxes, err := parseMoney(value.Text()); err == nil {
				extraction.TaxesUSD = lo.ToPtr(taxes)
			}
		case strings.Contains(label, "no incluye"):
			extraction.NotIncludes = listItems(value)
		case strings.Contains(label, "incluye"):
			extraction.Includes = listItems(value)
		}
	})

	doc.Find("table.itinerario tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		if parsed := parseItineraryDay(
			cells.Eq(0).Text(),
			cells.Eq(1).Text(),
			cells.Eq(2).Text(),
		); parsed != nil {
			extraction.Itinerary = append(extraction.Itinerary, *parsed)
		}
	})

	doc.Find("select.salidas option").Each(func(_ int, option *goquery.Selection) {
		if date, ok := parseDepartureDate(option.Text()); ok {
			extraction.Departures = append(extraction.Departures, date)
		}
	})

	return &extraction
}

// listItems collects trimmed li texts under the selection.
func listItems(list *goquery.Selection) []string {
	var items []string
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		if text := strings.TrimSpace(item.Text()); text != "" {
			items = append(items, text)
		}
	})
	return items
}

var dayNumberPattern = regexp.MustCompile(`\d+`)

func parseItineraryDay(number, title, description string) *models.ItineraryDay {
	match := dayNumberPattern.FindString(number)
	if match == "" {
		return nil
	}

	dayNumber, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}

	return &models.ItineraryDay{
		DayNumber:   dayNumber,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
}

var departureDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// parseDepartureDate reads a dd/mm/yyyy date anywhere in text.
func parseDepartureDate(text string) (time.Time, bool) {
	match := departureDatePattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// normalizeLabel lowercases a field label and collapses whitespace so the
// matching rules survive markup reformatting.
func normalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}
