// Package metrics defines the Prometheus collectors for indexing and
// querying. docsearch is a command line tool, so instead of serving a scrape
// endpoint the registry is written to a node_exporter textfile after each
// command.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for docsearch.
type Metrics struct {
	registry *prometheus.Registry

	DocsIngestedTotal *prometheus.CounterVec
	DocsSkippedTotal  prometheus.Counter
	TermsIndexed      *prometheus.GaugeVec
	CorpusWords       prometheus.Gauge
	QueriesTotal      *prometheus.CounterVec
	QueryLatency      *prometheus.HistogramVec
	CacheHitsTotal    prometheus.Counter
	CacheMissesTotal  prometheus.Counter
	IndexOpDuration   *prometheus.HistogramVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DocsIngestedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docsearch_docs_ingested_total",
				Help: "Documents added to the index, by backend.",
			},
			[]string{"backend"},
		),
		DocsSkippedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docsearch_docs_skipped_total",
				Help: "Documents skipped because the manifest already lists them.",
			},
		),
		TermsIndexed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "docsearch_terms",
				Help: "Distinct terms held by the index, by backend.",
			},
			[]string{"backend"},
		),
		CorpusWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "docsearch_corpus_words",
				Help: "Indexed words across the corpus.",
			},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docsearch_queries_total",
				Help: "Queries by result type (match, no_match).",
			},
			[]string{"result_type"},
		),
		QueryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docsearch_query_latency_seconds",
				Help:    "Query latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"cache_status"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docsearch_cache_hits_total",
				Help: "Query cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docsearch_cache_misses_total",
				Help: "Query cache misses.",
			},
		),
		IndexOpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docsearch_index_operation_seconds",
				Help:    "Duration of index build, load and save operations.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"operation", "backend"},
		),
	}

	m.registry.MustRegister(
		m.DocsIngestedTotal,
		m.DocsSkippedTotal,
		m.TermsIndexed,
		m.CorpusWords,
		m.QueriesTotal,
		m.QueryLatency,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.IndexOpDuration,
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveOp records how long an index operation took.
func (m *Metrics) ObserveOp(operation, backend string, start time.Time) {
	m.IndexOpDuration.WithLabelValues(operation, backend).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes the current values in the Prometheus text format. An
// empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
