package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	logicalFiles = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "welllog",
			Subsystem: "partition",
			Name:      "logical_files_total",
			Help:      "Logical files emitted by the partitioner.",
		},
	)
	recordsIndexed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "welllog",
			Subsystem: "index",
			Name:      "records_total",
			Help:      "Records classified by the indexer.",
		},
		[]string{"role"},
	)
	recordsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "welllog",
			Subsystem: "index",
			Name:      "records_skipped_total",
			Help:      "Records excluded from all indices.",
		},
		[]string{"reason"},
	)
	objectsMaterialized = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "welllog",
			Subsystem: "objects",
			Name:      "materialized_total",
			Help:      "Objects built from raw attribute bags.",
		},
		[]string{"type"},
	)
	discrepancies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "welllog",
			Subsystem: "objects",
			Name:      "discrepancies_total",
			Help:      "Recoverable loading anomalies recorded against objects or files.",
		},
		[]string{"kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(logicalFiles, recordsIndexed, recordsSkipped, objectsMaterialized, discrepancies)
	})
}

func RecordLogicalFile() {
	RegisterMetrics()
	logicalFiles.Inc()
}

func RecordIndexed(role string) {
	RegisterMetrics()
	recordsIndexed.WithLabelValues(role).Inc()
}

func RecordSkipped(reason string) {
	RegisterMetrics()
	recordsSkipped.WithLabelValues(reason).Inc()
}

func RecordMaterialized(objectType string, discrepancyKinds []string) {
	RegisterMetrics()
	objectsMaterialized.WithLabelValues(objectType).Inc()
	for _, kind := range discrepancyKinds {
		discrepancies.WithLabelValues(kind).Inc()
	}
}

func RecordDiscrepancy(kind string) {
	RegisterMetrics()
	discrepancies.WithLabelValues(kind).Inc()
}

// WriteTextfile writes every registered metric to path in the text
// exposition format read by the node exporter textfile collector.
func WriteTextfile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
