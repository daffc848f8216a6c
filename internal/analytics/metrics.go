package analytics

import (
	"vivid-analytics/internal/shared/metrics"
)

// metricComputationsTotal counts metric computations, labelled by catalogue
// metric name and error code (empty on success). Every Execute call increments
// it exactly once, after the computation finished or failed.
var (
	metricComputationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "computations_total",
		},
		[]string{"metric", metrics.FieldErrorCode},
	)
)
