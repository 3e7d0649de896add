package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_messages_processed_total",
			Help: "Messages handled by a pipeline stage, by outcome",
		},
		[]string{"stage", "outcome"},
	)

	ProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_message_duration_seconds",
			Help:    "Per-message processing duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	ReceiveFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_receive_failures_total",
			Help: "Failed attempts to receive a batch from the input queue",
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(MessagesProcessed)
	prometheus.MustRegister(ProcessingDuration)
	prometheus.MustRegister(ReceiveFailures)
}
