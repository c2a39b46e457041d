package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricMovieQuery            = "movie_query"
	MetricMovieQueryDuration    = "movie_query_duration"
	MetricChatbotExpansionTerms = "chatbot_expansion_terms"
	MetricMovieQueryResults     = "movie_query_results"
	MetricCatalogMovies         = "catalog_movies"
	MetricCatalogReload         = "catalog_reload"
	MetricCatalogLoadDuration   = "catalog_load_duration"
)

type PrometheusMetrics struct {
	queriesTotal          *prometheus.CounterVec
	queryDuration         *prometheus.HistogramVec
	chatbotExpansionTerms prometheus.Histogram
	queryResults          *prometheus.HistogramVec
	catalogMovies         prometheus.Gauge
	catalogReloads        *prometheus.CounterVec
	catalogLoadDuration   prometheus.Histogram
}

// NewPrometheusMetrics registers the movie service collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "movie_queries_total",
				Help: "Total number of movie queries served",
			},
			[]string{"operation", "status"},
		),
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "movie_query_duration_seconds",
				Help:    "Movie query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		chatbotExpansionTerms: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chatbot_expansion_terms",
				Help:    "Number of search terms produced by chatbot query expansion",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		queryResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "movie_query_results",
				Help:    "Number of movies returned per query",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"operation"},
		),
		catalogMovies: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_movies",
				Help: "Number of movies in the loaded catalog snapshot",
			},
		),
		catalogReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_reloads_total",
				Help: "Total number of catalog load attempts",
			},
			[]string{"status"},
		),
		catalogLoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_load_duration_seconds",
				Help:    "Time taken to read and publish a catalog snapshot",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricMovieQuery:
		if operation := tags["operation"]; operation != "" && status != "" {
			m.queriesTotal.WithLabelValues(operation, status).Inc()
		}
	case MetricCatalogReload:
		if status != "" {
			m.catalogReloads.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricCatalogLoadDuration {
		m.catalogLoadDuration.Observe(duration.Seconds())
	}
}

// ObserveHistogram adds one observation; per-operation histograms read the
// "operation" tag and drop observations without it.
func (m *PrometheusMetrics) ObserveHistogram(name string, value float64, tags map[string]string) {
	switch name {
	case MetricChatbotExpansionTerms:
		m.chatbotExpansionTerms.Observe(value)
	case MetricMovieQueryDuration:
		if operation := tags["operation"]; operation != "" {
			m.queryDuration.WithLabelValues(operation).Observe(value)
		}
	case MetricMovieQueryResults:
		if operation := tags["operation"]; operation != "" {
			m.queryResults.WithLabelValues(operation).Observe(value)
		}
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricCatalogMovies {
		m.catalogMovies.Set(value)
	}
}
