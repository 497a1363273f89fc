package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-assistant/pkg/telegram"
)

type recorder struct {
	mu    sync.Mutex
	texts []string
	paths []string
}

func newTestServer(t *testing.T, rec *recorder) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.paths = append(rec.paths, r.URL.Path)
		rec.mu.Unlock()

		switch {
		case strings.HasSuffix(r.URL.Path, "/setWebhook"):
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			switch req["url"] {
			case "cause_error":
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
			case "cause_500":
				w.WriteHeader(http.StatusInternalServerError)
			default:
				_, _ = w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			}
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var req telegram.SendMessageRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			rec.mu.Lock()
			rec.texts = append(rec.texts, req.Text)
			rec.mu.Unlock()
			if req.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok": true}`))
		case strings.HasSuffix(r.URL.Path, "/sendChatAction"):
			_, _ = w.Write([]byte(`{"ok": true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestBot(t *testing.T) {
	rec := &recorder{}
	ts := newTestServer(t, rec)
	ctx := context.Background()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook success", func(t *testing.T) {
		require.NoError(t, bot.SetWebhook(ctx, "https://example.com/webhook"))
	})

	t.Run("SetWebhook API failed", func(t *testing.T) {
		assert.ErrorContains(t, bot.SetWebhook(ctx, "cause_error"), "invalid url")
	})

	t.Run("SetWebhook HTTP failed", func(t *testing.T) {
		assert.Error(t, bot.SetWebhook(ctx, "cause_500"))
	})

	t.Run("SendMessage success", func(t *testing.T) {
		require.NoError(t, bot.SendMessage(ctx, 12345, "Hello"))
		require.NoError(t, bot.SendMessageWithMode(ctx, 12345, "*Hello*", telegram.ParseModeMarkdown))
	})

	t.Run("SendMessage API failed", func(t *testing.T) {
		assert.ErrorContains(t, bot.SendMessage(ctx, 12345, "cause_error"), "invalid text")
	})

	t.Run("SendChatAction", func(t *testing.T) {
		require.NoError(t, bot.SendChatAction(ctx, 12345, telegram.ChatActionTyping))
		assert.True(t, strings.HasSuffix(rec.paths[len(rec.paths)-1], "/sendChatAction"))
	})

	t.Run("long message is split", func(t *testing.T) {
		rec.texts = nil
		long := strings.Repeat("a", telegram.MaxMessageLength) + "\n" + "tail"
		require.NoError(t, bot.SendMessage(ctx, 12345, long))
		assert.Len(t, rec.texts, 2)
	})

	t.Run("unreachable API", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://127.0.0.1:1")
		assert.Error(t, badBot.SendMessage(ctx, 12345, "fail"))
	})
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, telegram.SplitMessage("short", 10))

	parts := telegram.SplitMessage("line one\nline two\nline three", 12)
	assert.Equal(t, []string{"line one\n", "line two\n", "line three"}, parts)

	parts = telegram.SplitMessage("ééééé", 2)
	assert.Equal(t, []string{"éé", "éé", "é"}, parts)
}
