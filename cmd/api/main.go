package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shopping-assistant/config"
	_ "shopping-assistant/docs" // Swagger docs
	"shopping-assistant/internal/app"
	tgDelivery "shopping-assistant/internal/assistant/delivery/telegram"
	"shopping-assistant/internal/httpserver"
	"shopping-assistant/pkg/log"
	"shopping-assistant/pkg/telegram"
)

// @title       Shopping Assistant API
// @description Conversational shopping assistant with offline fallback advice, over REST, WebSocket and Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Shopping Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend: %s (attempts=%d, retry_delay=%s, min_interval=%s)",
		cfg.Assistant.Backend, cfg.Assistant.MaxAttempts, cfg.Assistant.RetryDelay, cfg.Assistant.MinCallInterval)

	// 3. Assistant pipeline
	asst, err := app.NewAssistant(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}
	defer asst.Close()

	// 4. Telegram front-end (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, asst.UseCase, asst.Sessions, telegramBot)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantUseCase: asst.UseCase,
		Sessions:         asst.Sessions,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL, or the
// ngrok tunnel when none is set.
func registerWebhook(ctx context.Context, logger log.Logger, bot telegram.IBot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL unknown, set TELEGRAM_WEBHOOK_URL")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
