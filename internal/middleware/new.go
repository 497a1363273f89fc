package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"shopping-assistant/pkg/log"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// Middleware holds the shared state of the HTTP middlewares.
type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMin <= 0 disables throttling.
func New(l log.Logger, requestsPerMin int) Middleware {
	limit := rate.Inf
	burst := 1
	if requestsPerMin > 0 {
		limit = rate.Limit(float64(requestsPerMin) / 60.0)
		burst = max(requestsPerMin/10, 1)
	}

	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     limit,
		burst:    burst,
	}
}
