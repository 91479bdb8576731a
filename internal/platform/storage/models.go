package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"

	pgmodels "github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

const departureDateLayout = "2006-01-02"

// ToDBPackage converts models.Package into its postgres model.
func ToDBPackage(pkg *models.Package) (*pgmodels.Package, error) {
	itinerary, err := toDBItinerary(pkg.Itinerary)
	if err != nil {
		return nil, err
	}

	departures, err := toDBDepartures(pkg.Departures)
	if err != nil {
		return nil, err
	}

	return &pgmodels.Package{
		ID:               pkg.ID,
		ExternalCode:     pkg.ExternalCode,
		Title:            pkg.Title,
		SourceURL:        pkg.SourceURL,
		PriceUsd:         pkg.PriceUSD,
		TaxesUsd:         pkg.TaxesUSD,
		Includes:         toDBLines(pkg.Includes),
		NotIncludes:      toDBLines(pkg.NotIncludes),
		Itinerary:        itinerary,
		Departures:       departures,
		ScrapeStatus:     pkg.ScrapeStatus,
		LastScrapedAt:    pkg.LastScrapedAt,
		ScrapeLeaseUntil: pkg.ScrapeLeaseUntil,
		CreatedAt:        pkg.CreatedAt,
		UpdatedAt:        pkg.UpdatedAt,
	}, nil
}

// ToAppPackage converts a postgres package model into models.Package.
func ToAppPackage(dbPkg *pgmodels.Package) (*models.Package, error) {
	itinerary, err := toAppItinerary(dbPkg.Itinerary)
	if err != nil {
		return nil, err
	}

	departures, err := toAppDepartures(dbPkg.Departures)
	if err != nil {
		return nil, err
	}

	return &models.Package{
		ID:               dbPkg.ID,
		ExternalCode:     dbPkg.ExternalCode,
		Title:            dbPkg.Title,
		SourceURL:        dbPkg.SourceURL,
		PriceUSD:         dbPkg.PriceUsd,
		TaxesUSD:         dbPkg.TaxesUsd,
		Includes:         toAppLines(dbPkg.Includes),
		NotIncludes:      toAppLines(dbPkg.NotIncludes),
		Itinerary:        itinerary,
		Departures:       departures,
		ScrapeStatus:     dbPkg.ScrapeStatus,
		LastScrapedAt:    dbPkg.LastScrapedAt,
		ScrapeLeaseUntil: dbPkg.ScrapeLeaseUntil,
		CreatedAt:        dbPkg.CreatedAt,
		UpdatedAt:        dbPkg.UpdatedAt,
	}, nil
}

func toDBLines(lines []string) *string {
	if len(lines) == 0 {
		return nil
	}
	return lo.ToPtr(strings.Join(lines, "\n"))
}

func toAppLines(joined *string) []string {
	if joined == nil || *joined == "" {
		return nil
	}
	return strings.Split(*joined, "\n")
}

func toDBItinerary(days []models.ItineraryDay) (*string, error) {
	if len(days) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("can't marshal itinerary: %w", err)
	}

	return lo.ToPtr(string(raw)), nil
}

func toAppItinerary(raw *string) ([]models.ItineraryDay, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	var days []models.ItineraryDay
	if err := json.Unmarshal([]byte(*raw), &days); err != nil {
		return nil, fmt.Errorf("can't unmarshal itinerary: %w", err)
	}

	return days, nil
}

func toDBDepartures(departures []time.Time) (*string, error) {
	if len(departures) == 0 {
		return nil, nil
	}

	dates := lo.Map(departures, func(d time.Time, _ int) string {
		return d.Format(departureDateLayout)
	})

	raw, err := json.Marshal(dates)
	if err != nil {
		return nil, fmt.Errorf("can't marshal departures: %w", err)
	}

	return lo.ToPtr(string(raw)), nil
}

func toAppDepartures(raw *string) ([]time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	var dates []string
	if err := json.Unmarshal([]byte(*raw), &dates); err != nil {
		return nil, fmt.Errorf("can't unmarshal departures: %w", err)
	}

	departures := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		parsed, err := time.Parse(departureDateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("can't parse departure date %q: %w", date, err)
		}
		departures = append(departures, parsed)
	}

	return departures, nil
}
