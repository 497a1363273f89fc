package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	DeleteSession(c *gin.Context)
	SendMessage(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
	Stats(c *gin.Context)
	Chat(c *gin.Context)
}

// SessionStore is the session lifecycle the handlers need.
// *session.Store satisfies it.
type SessionStore interface {
	Create() *assistant.Session
	Get(id string) (*assistant.Session, error)
	Delete(id string) bool
}

type handler struct {
	l          log.Logger
	uc         assistant.UseCase
	sessions   SessionStore
	wsUpgrader websocket.Upgrader
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, sessions SessionStore) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
		wsUpgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
