package http

import (
	"github.com/gin-gonic/gin"

	"shopping-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is throttled per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.RateLimit())
	{
		sessions.POST("", h.CreateSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.POST("/:id/messages", h.SendMessage)
		sessions.GET("/:id/history", h.History)
		sessions.DELETE("/:id/history", h.ClearHistory)
		sessions.GET("/:id/stats", h.Stats)
	}

	rg.GET("/chat/ws", mw.RateLimit(), h.Chat)
}
