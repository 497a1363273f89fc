package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"shopping-assistant/pkg/response"
)

// RateLimit throttles each client IP with its own token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := extractIP(c.Request)
		if !m.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func (m Middleware) allow(key string) bool {
	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fallback to RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
