package models

import "time"

// Scrape statuses of a Package.
const (
	ScrapeStatusPending = "pending"
	ScrapeStatusScraped = "scraped"
)

// Batch outcome statuses.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Package is one catalog row for a sellable travel package sourced from the
// external site. ExternalCode is the stable identity (e.g. "MT-12117").
type Package struct {
	ID               int32
	ExternalCode     string
	Title            string
	SourceURL        *string
	PriceUSD         *float64
	TaxesUSD         *float64
	Includes         []string
	NotIncludes      []string
	Itinerary        []ItineraryDay
	Departures       []time.Time
	ScrapeStatus     string
	LastScrapedAt    *time.Time
	ScrapeLeaseUntil *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ItineraryDay is one day of a package itinerary.
type ItineraryDay struct {
	DayNumber   int    `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Extraction is the extractor's output for one source page. Nil pointers and
// empty slices mean the field was not found on the page.
type Extraction struct {
	PriceUSD    *float64
	TaxesUSD    *float64
	Includes    []string
	NotIncludes []string
	Itinerary   []ItineraryDay
	Departures  []time.Time
}

// FieldCounts summarises which fields one extraction produced.
type FieldCounts struct {
	HasPrice      bool `json:"has_price"`
	HasTaxes      bool `json:"has_taxes"`
	Includes      int  `json:"includes"`
	NotIncludes   int  `json:"not_includes"`
	ItineraryDays int  `json:"itinerary_days"`
	Departures    int  `json:"departures"`
}

// Counts returns field counts of the extraction.
func (e *Extraction) Counts() FieldCounts {
	return FieldCounts{
		HasPrice:      e.PriceUSD != nil,
		HasTaxes:      e.TaxesUSD != nil,
		Includes:      len(e.Includes),
		NotIncludes:   len(e.NotIncludes),
		ItineraryDays: len(e.Itinerary),
		Departures:    len(e.Departures),
	}
}

// BatchOutcome is the result of processing one package in a batch.
type BatchOutcome struct {
	ExternalCode string      `json:"external_code"`
	Status       string      `json:"status"`
	FieldCounts  FieldCounts `json:"extracted_field_counts"`
	Error        string      `json:"error,omitempty"`
}

// BatchReport aggregates outcomes of one batch driver pass.
type BatchReport struct {
	Processed int            `json:"processed"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Outcomes  []BatchOutcome `json:"results"`
}

// Add appends an outcome and updates the tallies.
func (r *BatchReport) Add(outcome BatchOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	r.Processed++
	if outcome.Status == OutcomeSuccess {
		r.Succeeded++
	} else {
		r.Failed++
	}
}

// Coverage is aggregate catalog completeness used by the progress monitor.
type Coverage struct {
	Total        int64 `json:"total"`
	WithPrice    int64 `json:"with_price"`
	WithIncludes int64 `json:"with_includes"`
	Scraped      int64 `json:"scraped"`
}

// Progress is the single value the monitor tracks between polls.
func (c Coverage) Progress() int64 {
	return c.WithPrice + c.WithIncludes
}

// Complete reports whether every eligible package has both price and
// inclusion data.
func (c Coverage) Complete() bool {
	return c.Total > 0 && c.WithPrice >= c.Total && c.WithIncludes >= c.Total
}

// Percent returns inclusion-data coverage as a percentage.
func (c Coverage) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.WithIncludes) / float64(c.Total) * 100
}

// ApplyExtraction merges an extraction into the package. Only fields present
// in the extraction overwrite stored values, so a transient miss never
// regresses already-good data. Merging the same extraction twice leaves the
// package unchanged after the first merge.
func (p *Package) ApplyExtraction(extraction *Extraction, now time.Time) {
	if extraction.PriceUSD != nil {
		p.PriceUSD = extraction.PriceUSD
	}
	if extraction.TaxesUSD != nil {
		p.TaxesUSD = extraction.TaxesUSD
	}
	if len(extraction.Includes) > 0 {
		p.Includes = extraction.Includes
	}
	if len(extraction.NotIncludes) > 0 {
		p.NotIncludes = extraction.NotIncludes
	}
	if len(extraction.Itinerary) > 0 {
		p.Itinerary = extraction.Itinerary
	}
	if len(extraction.Departures) > 0 {
		p.Departures = extraction.Departures
	}

	p.ScrapeStatus = ScrapeStatusScraped
	p.LastScrapedAt = &now
	p.ScrapeLeaseUntil = nil
	p.UpdatedAt = now
}
