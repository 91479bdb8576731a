package models_test

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models/modelstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestUnitApplyExtraction(t *testing.T) {
	tests := map[string]struct {
		extraction func(e *models.Extraction)
	}{
		"full extraction": {
			extraction: func(e *models.Extraction) {},
		},
		"price only": {
			extraction: func(e *models.Extraction) {
				e.TaxesUSD = nil
				e.Includes = nil
				e.NotIncludes = nil
				e.Itinerary = nil
				e.Departures = nil
			},
		},
		"lists only": {
			extraction: func(e *models.Extraction) {
				e.PriceUSD = nil
				e.TaxesUSD = nil
				e.Itinerary = nil
				e.Departures = nil
			},
		},
		"nothing found": {
			extraction: func(e *models.Extraction) {
				*e = models.Extraction{}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pkg := modelstesting.FakePackage()
			before := pkg
			extraction := modelstesting.FakeExtraction(tt.extraction)

			pkg.ApplyExtraction(&extraction, now)

			// present fields must come from the extraction,
			// absent fields must keep stored values.
			if extraction.PriceUSD != nil {
				assert.Equal(t, extraction.PriceUSD, pkg.PriceUSD, "price should be overwritten")
			} else {
				assert.Equal(t, before.PriceUSD, pkg.PriceUSD, "absent price shouldn't erase stored value")
			}
			if extraction.TaxesUSD != nil {
				assert.Equal(t, extraction.TaxesUSD, pkg.TaxesUSD, "taxes should be overwritten")
			} else {
				assert.Equal(t, before.TaxesUSD, pkg.TaxesUSD, "absent taxes shouldn't erase stored value")
			}
			if len(extraction.Includes) > 0 {
				assert.Equal(t, extraction.Includes, pkg.Includes, "includes should be overwritten")
			} else {
				assert.Equal(t, before.Includes, pkg.Includes, "absent includes shouldn't erase stored value")
			}
			if len(extraction.NotIncludes) > 0 {
				assert.Equal(t, extraction.NotIncludes, pkg.NotIncludes, "not-includes should be overwritten")
			} else {
				assert.Equal(t, before.NotIncludes, pkg.NotIncludes, "absent not-includes shouldn't erase stored value")
			}
			if len(extraction.Itinerary) > 0 {
				assert.Equal(t, extraction.Itinerary, pkg.Itinerary, "itinerary should be overwritten")
			} else {
				assert.Equal(t, before.Itinerary, pkg.Itinerary, "absent itinerary shouldn't erase stored value")
			}
			if len(extraction.Departures) > 0 {
				assert.Equal(t, extraction.Departures, pkg.Departures, "departures should be overwritten")
			} else {
				assert.Equal(t, before.Departures, pkg.Departures, "absent departures shouldn't erase stored value")
			}

			assert.Equal(t, models.ScrapeStatusScraped, pkg.ScrapeStatus, "package should be marked scraped")
			require.NotNil(t, pkg.LastScrapedAt, "last scraped timestamp should be set")
			assert.Equal(t, now, *pkg.LastScrapedAt, "last scraped timestamp should be merge time")
			assert.Nil(t, pkg.ScrapeLeaseUntil, "merge should release the scrape lease")
		})
	}
}

func TestUnitApplyExtractionIdempotent(t *testing.T) {
	pkg := modelstesting.FakePackage()
	extraction := modelstesting.FakeExtraction(func(e *models.Extraction) {
		e.TaxesUSD = nil
		e.Departures = nil
	})

	once := pkg
	once.ApplyExtraction(&extraction, now)

	twice := pkg
	twice.ApplyExtraction(&extraction, now)
	twice.ApplyExtraction(&extraction, now)

	assert.Equal(t, once, twice, "merging the same extraction twice should equal merging once")
}

func TestUnitBatchReportAdd(t *testing.T) {
	report := models.BatchReport{}

	report.Add(models.BatchOutcome{ExternalCode: "MT-1", Status: models.OutcomeSuccess})
	report.Add(models.BatchOutcome{ExternalCode: "MT-2", Status: models.OutcomeError, Error: "boom"})
	report.Add(models.BatchOutcome{ExternalCode: "MT-3", Status: models.OutcomeSuccess})

	assert.Equal(t, 3, report.Processed, "should count every outcome")
	assert.Equal(t, 2, report.Succeeded, "should count successes")
	assert.Equal(t, 1, report.Failed, "should count errors")
	assert.Equal(t,
		[]string{"MT-1", "MT-2", "MT-3"},
		lo.Map(report.Outcomes, func(o models.BatchOutcome, _ int) string { return o.ExternalCode }),
		"should keep outcomes in processing order",
	)
}

func TestUnitCoverage(t *testing.T) {
	tests := map[string]struct {
		coverage     models.Coverage
		wantProgress int64
		wantComplete bool
		wantPercent  float64
	}{
		"empty catalog": {
			coverage: models.Coverage{},
		},
		"partial": {
			coverage:     models.Coverage{Total: 200, WithPrice: 150, WithIncludes: 50},
			wantProgress: 200,
			wantPercent:  25,
		},
		"complete": {
			coverage:     models.Coverage{Total: 10, WithPrice: 10, WithIncludes: 10},
			wantProgress: 20,
			wantComplete: true,
			wantPercent:  100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.wantProgress, tt.coverage.Progress(), "progress should sum price and includes counts")
			assert.Equal(t, tt.wantComplete, tt.coverage.Complete(), "completeness should require both fields at total")
			assert.InDelta(t, tt.wantPercent, tt.coverage.Percent(), 0.001, "percent should be includes coverage")
		})
	}
}
