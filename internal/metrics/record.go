package metrics

import (
	"time"
)

// RecordBuild counts a build attempt and observes its duration.
func RecordBuild(result string, elapsed time.Duration) {
	BuildsTotal.WithLabelValues(result).Inc()
	if result == ResultSuccess {
		BuildDuration.Observe(elapsed.Seconds())
		LastBuildTimestamp.SetToCurrentTime()
	}
}

// RecordModel replaces the published-model gauges.
func RecordModel(recipes, factories, items int, parseErrorsByKind map[string]int) {
	Entities.WithLabelValues(EntityRecipes).Set(float64(recipes))
	Entities.WithLabelValues(EntityFactories).Set(float64(factories))
	Entities.WithLabelValues(EntityItems).Set(float64(items))

	// Kinds that disappeared from the new model must not keep their old value
	ParseErrors.Reset()
	for kind, n := range parseErrorsByKind {
		ParseErrors.WithLabelValues(kind).Set(float64(n))
	}
}

// RecordFetch counts a source fetch.
func RecordFetch(scheme string, err error, size int) {
	if err != nil {
		SourceFetches.WithLabelValues(scheme, ResultFailure).Inc()
		return
	}
	SourceFetches.WithLabelValues(scheme, ResultSuccess).Inc()
	SourceBytes.Set(float64(size))
}
