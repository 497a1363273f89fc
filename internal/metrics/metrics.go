package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAnswered = "answered"
	OutcomeFallback = "fallback"
	OutcomeApology  = "apology"
	OutcomeAborted  = "aborted"

	AttemptOK      = "ok"
	AttemptError   = "error"
	AttemptEmpty   = "empty"
	AttemptFlagged = "flagged"
)

var (
	Turns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_turns_total",
			Help: "Total number of handled turns",
		},
		[]string{"category", "outcome"},
	)

	CallAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_call_attempts_total",
			Help: "Total number of external call attempts",
		},
		[]string{"result"},
	)

	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_fallbacks_total",
			Help: "Total number of offline fallback answers",
		},
		[]string{"category"},
	)

	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_turn_duration_seconds",
			Help:    "Duration of a turn in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"outcome"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assistant_active_sessions",
			Help: "Number of live chat sessions",
		},
	)
)
