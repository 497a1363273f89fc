package telegram

import (
	"github.com/gin-gonic/gin"

	"shopping-assistant/internal/assistant"
	pkgLog "shopping-assistant/pkg/log"
	pkgTelegram "shopping-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// SessionStore resolves one session per chat.
type SessionStore interface {
	GetOrCreate(key string) *assistant.Session
	Delete(id string) bool
}

type handler struct {
	l        pkgLog.Logger
	uc       assistant.UseCase
	sessions SessionStore
	bot      pkgTelegram.IBot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, sessions SessionStore, bot pkgTelegram.IBot) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
		bot:      bot,
	}
}
