package telegram

import "context"

// IBot is the subset of the Bot API the assistant uses.
type IBot interface {
	SetWebhook(ctx context.Context, webhookURL string) error
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}
