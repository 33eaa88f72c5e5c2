package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse telemetry counters, registered on the default Prometheus registry.
var (
	DocumentsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simcli",
		Name:      "documents_processed_total",
		Help:      "Number of .SIM documents parsed and exported successfully.",
	})

	DocumentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simcli",
		Name:      "documents_failed_total",
		Help:      "Number of .SIM documents abandoned after a fatal parse or export error.",
	})

	RowsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simcli",
		Name:      "table_rows_written_total",
		Help:      "Number of table rows committed across all documents.",
	})

	ZoneWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simcli",
		Name:      "zone_write_failures_total",
		Help:      "Number of SV-A zone rows rejected and skipped.",
	})
)
