package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotation_messages_processed_total",
			Help: "Total number of inbound messages processed",
		},
		[]string{"kind"},
	)

	SlotsExtracted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quotation_slots_extracted",
			Help:    "Number of filled slots per extraction pass",
			Buckets: prometheus.LinearBuckets(0, 1, 7),
		},
	)

	QuotationsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotation_records_completed_total",
			Help: "Total number of quotation records that reached all six slots",
		},
	)

	UpstreamFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotation_upstream_fallbacks_total",
			Help: "Total number of generation calls replaced by canned fallbacks",
		},
		[]string{"call"},
	)

	ActiveConversations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "quotation_active_conversations",
			Help: "Number of conversations currently held in the store",
		},
	)

	ConversationsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotation_conversations_evicted_total",
			Help: "Total number of conversations removed by the eviction sweep",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "quotation_request_duration_seconds",
			Help: "Duration of request processing in seconds",
		},
		[]string{"endpoint"},
	)
)
