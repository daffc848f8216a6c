package datasets

import (
	"vivid-analytics/internal/shared/metrics"
)

// metricDatasetRecordsLoaded reports how many records the last dataset load
// produced, labelled by record set ("users" or "orders").
var (
	metricDatasetRecordsLoaded = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDatasets,
			Name:      "records_loaded",
		},
		[]string{"record_set"},
	)
)
