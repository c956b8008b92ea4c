package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	CommandsProcessed *prometheus.CounterVec
	UnknownCommands   prometheus.Counter
	PNRsFinalized     prometheus.Counter
	PNRsCancelled     prometheus.Counter
	PersistWarnings   prometheus.Counter
	CommandTime       prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		CommandsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_processed_total",
			Help:      "The total number of processed terminal commands",
		}, []string{"command"}),
		UnknownCommands: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_commands_total",
			Help:      "The total number of inputs that matched no command",
		}),
		PNRsFinalized: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pnrs_finalized_total",
			Help:      "The total number of PNRs finalized with ET/ER",
		}),
		PNRsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pnrs_cancelled_total",
			Help:      "The total number of PNRs cancelled with XI",
		}),
		PersistWarnings: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_warnings_total",
			Help:      "The total number of failed persistence mirror writes",
		}),
		CommandTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_processing_time_seconds",
			Help:      "Time taken to process a terminal command",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
