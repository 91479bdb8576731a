package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Extractor --filename extractor.go

// Storage is the catalog store the runner selects from and merges into.
type Storage interface {
	// ListEligible returns up to limit scrapeable packages in ascending id order starting at offset.
	ListEligible(ctx context.Context, limit, offset int64) ([]models.Package, error)
	// MergeExtraction merges extracted fields into the package identified by externalCode.
	MergeExtraction(ctx context.Context, externalCode string, extraction *models.Extraction, now time.Time) (*models.Package, error)
	// ReleaseLease clears the scrape lease of the package identified by externalCode.
	ReleaseLease(ctx context.Context, externalCode string) error
}

// Extractor extracts package fields from one source page.
type Extractor interface {
	Extract(ctx context.Context, sourceURL string) (*models.Extraction, error)
}

// Option is custom configuration of Runner.
type Option func(r *Runner)

// Runner drives one batch pass: it selects a bounded slice of the catalog,
// extracts each package strictly sequentially and merge-persists the result
// per item. The fixed inter-item delay is the system's backpressure against
// the source site.
type Runner struct {
	storage   Storage
	extractor Extractor
	delay     time.Duration
	clock     Clock
	metrics   *Metrics
}

// NewRunner returns new Runner sleeping delay between items.
func NewRunner(storage Storage, extractor Extractor, delay time.Duration, ops ...Option) *Runner {
	runner := &Runner{
		storage:   storage,
		extractor: extractor,
		delay:     delay,
		clock:     systemClock{},
	}

	for _, op := range ops {
		op(runner)
	}

	return runner
}

// Run processes one batch of up to limit packages starting at offset and
// returns the per-item outcomes in processing order. A failing item never
// aborts the batch; an error is returned only when the batch itself can't be
// selected or the context ends mid-batch. Outcomes recorded before a
// cancellation are returned alongside the context error, since every merge
// is persisted per item.
func (r *Runner) Run(ctx context.Context, limit, offset int64) (*models.BatchReport, error) {
	packages, err := r.storage.ListEligible(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("can't select batch: %w", err)
	}

	report := &models.BatchReport{}
	for ix := range packages {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		outcome := r.processPackage(ctx, &packages[ix])
		report.Add(outcome)
		r.metrics.IncPackages(outcome.Status)

		r.clock.Sleep(ctx, r.delay)
	}

	r.metrics.IncBatches()

	return report, nil
}

func (r *Runner) processPackage(ctx context.Context, pkg *models.Package) models.BatchOutcome {
	started := r.clock.Now()

	extraction, err := r.extractor.Extract(ctx, *pkg.SourceURL)
	if err != nil {
		return r.failedOutcome(ctx, pkg, fmt.Errorf("can't extract package: %w", err))
	}

	r.metrics.ObserveExtraction(r.clock.Now().Sub(started))

	if _, err := r.storage.MergeExtraction(ctx, pkg.ExternalCode, extraction, r.clock.Now()); err != nil {
		return r.failedOutcome(ctx, pkg, fmt.Errorf("can't merge extraction: %w", err))
	}

	return models.BatchOutcome{
		ExternalCode: pkg.ExternalCode,
		Status:       models.OutcomeSuccess,
		FieldCounts:  extraction.Counts(),
	}
}

// failedOutcome records a per-item failure and releases the item's scrape
// lease, so a failed package stays visible to the recovery sweep instead of
// hiding behind its lease until the TTL runs out.
func (r *Runner) failedOutcome(ctx context.Context, pkg *models.Package, failure error) models.BatchOutcome {
	outcome := models.BatchOutcome{
		ExternalCode: pkg.ExternalCode,
		Status:       models.OutcomeError,
		Error:        failure.Error(),
	}

	if err := r.storage.ReleaseLease(ctx, pkg.ExternalCode); err != nil {
		outcome.Error = fmt.Sprintf("%s; %s", outcome.Error, err)
	}

	return outcome
}

// WithClock sets Runner's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithMetrics sets Runner's Metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}
