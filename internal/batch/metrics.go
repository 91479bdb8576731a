package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the batch driver.
type Metrics struct {
	Registry           *prometheus.Registry
	BatchesTotal       prometheus.Counter
	PackagesTotal      *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	batches := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_sync_batches_total",
			Help: "Total batch driver passes completed.",
		},
	)
	packages := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_sync_packages_total",
			Help: "Total packages processed by outcome status.",
		},
		[]string{"status"},
	)
	extractionDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_sync_extraction_duration_seconds",
			Help:    "Time spent extracting one source page.",
			Buckets: prometheus.DefBuckets,
		},
	)

	registry.MustRegister(batches, packages, extractionDuration)

	return &Metrics{
		Registry:           registry,
		BatchesTotal:       batches,
		PackagesTotal:      packages,
		ExtractionDuration: extractionDuration,
	}
}

// IncBatches increments the completed batches counter.
func (m *Metrics) IncBatches() {
	if m == nil {
		return
	}
	m.BatchesTotal.Inc()
}

// IncPackages increments the processed packages counter for a status label.
func (m *Metrics) IncPackages(status string) {
	if m == nil {
		return
	}
	m.PackagesTotal.WithLabelValues(status).Inc()
}

// ObserveExtraction records one extraction duration.
func (m *Metrics) ObserveExtraction(d time.Duration) {
	if m == nil {
		return
	}
	m.ExtractionDuration.Observe(d.Seconds())
}
