package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     defaultAPIBase + token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	resp, err := b.post(ctx, "setWebhook", map[string]string{"url": webhookURL})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
// Text longer than MaxMessageLength goes out as several messages.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	for _, part := range SplitMessage(text, MaxMessageLength) {
		payload := SendMessageRequest{
			ChatID:    chatID,
			Text:      part,
			ParseMode: parseMode,
		}
		if err := b.call(ctx, "sendMessage", payload); err != nil {
			return err
		}
	}
	return nil
}

// SendChatAction shows a status such as "typing" in the chat.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	return b.call(ctx, "sendChatAction", ChatActionRequest{ChatID: chatID, Action: action})
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	resp, err := b.post(ctx, method, payload)
	if err != nil {
		return fmt.Errorf("telegram %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	return nil
}

func (b *Bot) post(ctx context.Context, method string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return b.httpClient.Do(req)
}

// SplitMessage cuts text into chunks of at most limit runes, preferring
// to break at a newline.
func SplitMessage(text string, limit int) []string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		if nl := strings.LastIndex(string(runes[:limit]), "\n"); nl > 0 {
			cut = len([]rune(string(runes[:limit])[:nl])) + 1
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
