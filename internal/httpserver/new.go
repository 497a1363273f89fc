package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"shopping-assistant/internal/assistant"
	tgDelivery "shopping-assistant/internal/assistant/delivery/telegram"
	"shopping-assistant/internal/session"
	"shopping-assistant/pkg/log"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Assistant domain
	assistantUC    assistant.UseCase
	sessions       *session.Store
	requestsPerMin int

	// Telegram front-end
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Assistant domain
	AssistantUseCase assistant.UseCase
	Sessions         *session.Store
	RequestsPerMin   int

	// Telegram front-end (optional)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		assistantUC:     cfg.AssistantUseCase,
		sessions:        cfg.Sessions,
		requestsPerMin:  cfg.RequestsPerMin,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	return nil
}
