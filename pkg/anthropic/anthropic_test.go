package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{APIKey: "  "})
	assert.Error(t, err)
}

func TestBuildParams(t *testing.T) {
	c, err := New(Config{APIKey: "k", Model: "claude-test"})
	require.NoError(t, err)

	_, err = c.buildParams(&Request{})
	assert.ErrorIs(t, err, ErrNoMessages)

	params, err := c.buildParams(&Request{
		System:   "be helpful",
		Messages: []Message{{Role: RoleUser, Text: "hi"}, {Role: RoleAssistant, Text: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultMaxTokens), params.MaxTokens)
	require.Len(t, params.Messages, 2)
	assert.Len(t, params.System, 1)
}

func TestGenerateContent(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Go with the Sony."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 9, "output_tokens": 5}
		}`))
	}))
	defer ts.Close()

	c, err := New(Config{APIKey: "k", Model: "claude-test", BaseURL: ts.URL})
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), &Request{
		Messages:  []Message{{Role: RoleUser, Text: "Sony or Bose?"}},
		MaxTokens: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, "Go with the Sony.", resp.Text)
	assert.Equal(t, 9, resp.Usage.InputTokens)
	assert.Equal(t, 5, resp.Usage.OutputTokens)
	assert.Equal(t, "claude-test", body["model"])
	assert.EqualValues(t, 300, body["max_tokens"])
}
