package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Hub API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Generations
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "generations_total",
			Help:      "Total generation requests by outcome",
		},
		[]string{"tool", "provider", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "generation_duration_seconds",
			Help:      "Provider call latency",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"provider"},
	)

	// Provider errors
	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	// Model selection
	SelectorFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "selector_fallbacks_total",
			Help:      "Model selections that degraded to the provider fallback table",
		},
		[]string{"provider"},
	)

	// Credits
	CreditsSpentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "credits_spent_total",
			Help:      "Credits deducted for successful generations",
		},
		[]string{"tool"},
	)

	AdRewardsClaimedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "ad_rewards_claimed_total",
			Help:      "Ad reward claims by type",
		},
		[]string{"type"},
	)

	// Sessions
	SessionsActiveSweepTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aitoolhub",
			Subsystem: "hub_api",
			Name:      "sessions_swept_total",
			Help:      "Expired sessions removed by the background sweep",
		},
	)
)
