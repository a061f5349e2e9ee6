package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Catalog metric names
const (
	MetricNameBuildsTotal        = "factorymod_builds_total"
	MetricNameBuildDuration      = "factorymod_build_duration_seconds"
	MetricNameParseErrors        = "factorymod_parse_errors"
	MetricNameEntities           = "factorymod_entities"
	MetricNameLastBuildTimestamp = "factorymod_last_build_timestamp_seconds"
)

// Source metric names
const (
	MetricNameSourceFetches     = "factorymod_source_fetches_total"
	MetricNameSourceCacheHits   = "factorymod_source_cache_hits_total"
	MetricNameSourceCacheMisses = "factorymod_source_cache_misses_total"
	MetricNameSourceBytes       = "factorymod_source_bytes"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Catalog metric help text
const (
	HelpTextBuildsTotal        = "Total number of model builds by result"
	HelpTextBuildDuration      = "Time spent parsing and linking a configuration"
	HelpTextParseErrors        = "Entity parse errors in the published model by kind"
	HelpTextEntities           = "Entities in the published model by kind"
	HelpTextLastBuildTimestamp = "Unix time of the last successful build"
)

// Source metric help text
const (
	HelpTextSourceFetches     = "Configuration fetches by scheme and result"
	HelpTextSourceCacheHits   = "Configuration fetches served from the cache"
	HelpTextSourceCacheMisses = "Configuration fetches that missed the cache"
	HelpTextSourceBytes       = "Size of the last fetched configuration in bytes"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelResult = "result"
	LabelScheme = "scheme"
)

// Label values
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultUnchanged = "unchanged"

	EntityRecipes   = "recipes"
	EntityFactories = "factories"
	EntityItems     = "items"

	// PathUnmatched labels requests no route matched
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// BuildDurationBuckets are the histogram buckets for model builds
var BuildDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
