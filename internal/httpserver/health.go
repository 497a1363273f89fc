package httpserver

import (
	"github.com/gin-gonic/gin"

	"shopping-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "shopping-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("healthy"))
}

// readyCheck reports the live session count alongside readiness.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.healthBody("ready")
	body["sessions"] = srv.sessions.Len()
	body["telegram"] = srv.telegramHandler != nil
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("alive"))
}

func (srv HTTPServer) healthBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}
