package narrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcome labels
const (
	statusSuccess   = "success"
	statusError     = "error"
	statusMalformed = "malformed"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpgdm_narrator_requests_total",
			Help: "Total number of narration requests.",
		},
		[]string{"operation", "backend", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rpgdm_narrator_request_duration_seconds",
			Help:    "Histogram of narration request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "backend"},
	)
	promptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rpgdm_narrator_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"operation", "backend"},
	)
	completionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rpgdm_narrator_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(50, 50, 20),
		},
		[]string{"operation", "backend"},
	)
)
