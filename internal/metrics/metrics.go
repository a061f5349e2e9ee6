package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	BuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildsTotal,
			Help: HelpTextBuildsTotal,
		},
		[]string{LabelResult},
	)

	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBuildDuration,
			Help:    HelpTextBuildDuration,
			Buckets: BuildDurationBuckets,
		},
	)

	ParseErrors = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameParseErrors,
			Help: HelpTextParseErrors,
		},
		[]string{LabelKind},
	)

	Entities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameEntities,
			Help: HelpTextEntities,
		},
		[]string{LabelKind},
	)

	LastBuildTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLastBuildTimestamp,
			Help: HelpTextLastBuildTimestamp,
		},
	)
)

// Source Metrics
var (
	SourceFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSourceFetches,
			Help: HelpTextSourceFetches,
		},
		[]string{LabelScheme, LabelResult},
	)

	SourceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSourceCacheHits,
			Help: HelpTextSourceCacheHits,
		},
	)

	SourceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSourceCacheMisses,
			Help: HelpTextSourceCacheMisses,
		},
	)

	SourceBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSourceBytes,
			Help: HelpTextSourceBytes,
		},
	)
)
