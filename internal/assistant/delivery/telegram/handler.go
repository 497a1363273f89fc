package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	pkgLog "shopping-assistant/pkg/log"
	pkgResponse "shopping-assistant/pkg/response"
	pkgTelegram "shopping-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges at once and answers in the background, since a turn with
// retries can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := pkgLog.WithRequestID(context.Background(), fmt.Sprintf("tg-%d", update.UpdateID))
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, failureMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers a single Telegram message in the chat's session.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	key := sessionKey(msg.Chat.ID)
	sess := h.sessions.GetOrCreate(key)

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ChatActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	reply, err := h.uc.Respond(ctx, sess, text)
	if err != nil {
		return err
	}
	if reply.Exit {
		h.sessions.Delete(key)
	}

	return h.send(ctx, msg.Chat.ID, reply.Text)
}

// send delivers text chunk by chunk. Each chunk tries Markdown first and is
// resent as plain text alone when Telegram rejects its entities, so earlier
// chunks never repeat.
func (h *handler) send(ctx context.Context, chatID int64, text string) error {
	for i, part := range pkgTelegram.SplitMessage(text, pkgTelegram.MaxMessageLength) {
		err := h.bot.SendMessageWithMode(ctx, chatID, part, pkgTelegram.ParseModeMarkdown)
		if err == nil {
			continue
		}
		h.l.Warnf(ctx, "telegram handler: markdown send of chunk %d failed, retrying as plain text: %v", i+1, err)
		if err := h.bot.SendMessage(ctx, chatID, part); err != nil {
			return err
		}
	}
	return nil
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("telegram_%d", chatID)
}
