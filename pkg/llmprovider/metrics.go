package llmprovider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
	resultEmpty = "empty"
)

var providerRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "llm_provider_requests_total",
		Help: "Total number of LLM provider requests",
	},
	[]string{"provider", "result"},
)
