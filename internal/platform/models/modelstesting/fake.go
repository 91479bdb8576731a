package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

// FakePackage returns a models.Package with fake data and a non-null source
// URL, so it is eligible for scraping unless an option says otherwise.
func FakePackage(ops ...func(p *models.Package)) models.Package {
	code := fmt.Sprintf("MT-%d", 10000+rand.Intn(90000))
	pkg := models.Package{
		ID:           rand.Int31(),
		ExternalCode: code,
		Title:        faker.Sentence(),
		SourceURL:    lo.ToPtr(fmt.Sprintf("https://www.example.com/viaje/%s-%s.html", faker.Word(), code)),
		PriceUSD:     lo.ToPtr(float64(100 + rand.Intn(5000))),
		TaxesUSD:     lo.ToPtr(float64(50 + rand.Intn(900))),
		Includes:     fakeLines(),
		NotIncludes:  fakeLines(),
		Itinerary:    fakeItinerary(),
		Departures:   fakeDepartures(),
		ScrapeStatus: models.ScrapeStatusPending,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
		UpdatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&pkg)
	}

	return pkg
}

// FakeExtraction returns a models.Extraction with every field present.
func FakeExtraction(ops ...func(e *models.Extraction)) models.Extraction {
	extraction := models.Extraction{
		PriceUSD:    lo.ToPtr(float64(100 + rand.Intn(5000))),
		TaxesUSD:    lo.ToPtr(float64(50 + rand.Intn(900))),
		Includes:    fakeLines(),
		NotIncludes: fakeLines(),
		Itinerary:   fakeItinerary(),
		Departures:  fakeDepartures(),
	}

	for _, op := range ops {
		op(&extraction)
	}

	return extraction
}

func fakeLines() []string {
	lines := make([]string, 0, 3)
	for i, count := 0, 1+rand.Intn(3); i < count; i++ {
		lines = append(lines, faker.Sentence())
	}
	return lines
}

func fakeItinerary() []models.ItineraryDay {
	days := make([]models.ItineraryDay, 0, 3)
	for ix, count := 0, 1+rand.Intn(4); ix < count; ix++ {
		days = append(days, models.ItineraryDay{
			DayNumber:   ix + 1,
			Title:       faker.Sentence(),
			Description: faker.Paragraph(),
		})
	}
	return days
}

func fakeDepartures() []time.Time {
	departures := make([]time.Time, 0, 3)
	day := time.Now().UTC().Truncate(24 * time.Hour)
	for ix, count := 0, 1+rand.Intn(3); ix < count; ix++ {
		departures = append(departures, day.AddDate(0, ix+1, 0))
	}
	return departures
}
