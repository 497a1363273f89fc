package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/middleware"
	"shopping-assistant/internal/model"
	"shopping-assistant/internal/session"
	"shopping-assistant/pkg/log"
)

type fakeUseCase struct{}

func (fakeUseCase) Respond(ctx context.Context, sess *assistant.Session, text string) (assistant.Reply, error) {
	if cmd, ok := assistant.ParseCommand(text); ok {
		return assistant.Reply{Text: "cmd " + string(cmd), Command: cmd, Exit: cmd == assistant.CommandExit}, nil
	}
	out, err := fakeUseCase{}.Handle(ctx, sess, assistant.HandleInput{Text: text})
	if err != nil {
		return assistant.Reply{}, err
	}
	return assistant.Reply{Text: out.Response, Turn: &out}, nil
}

func (fakeUseCase) Handle(ctx context.Context, sess *assistant.Session, in assistant.HandleInput) (assistant.HandleOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return assistant.HandleOutput{}, assistant.ErrEmptyInput
	}
	out := assistant.HandleOutput{
		Response: "answer to " + in.Text,
		Analysis: model.QueryAnalysis{Category: model.CategoryElectronics, QueryTypes: []model.QueryType{model.QueryTypeComparison}},
		Outcome:  assistant.OutcomeAnswered,
		Attempts: 1,
	}
	sess.Append(model.ConversationRecord{Query: in.Text, ResponsePreview: out.Response, Category: out.Analysis.Category, Success: true})
	return out, nil
}

func (fakeUseCase) Summary(sess *assistant.Session) string { return "summary" }
func (fakeUseCase) Stats(sess *assistant.Session) string   { return "stats" }
func (fakeUseCase) Status(sess *assistant.Session) string  { return "status" }
func (fakeUseCase) Help() string                           { return "help" }
func (fakeUseCase) Welcome() string                        { return "welcome" }
func (fakeUseCase) Examples() string                       { return "examples" }

type apiResp struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type testEnv struct {
	engine *gin.Engine
	store  *session.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.New(session.Config{})
	engine := gin.New()
	h := New(log.NewNop(), fakeUseCase{}, store)
	RegisterRoutes(engine.Group("/api/v1"), h, middleware.New(log.NewNop(), 0))
	return &testEnv{engine: engine, store: store}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, apiResp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var resp apiResp
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (e *testEnv) createSession(t *testing.T) string {
	t.Helper()
	w, resp := e.do(t, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s struct {
		SessionID string `json:"session_id"`
		Welcome   string `json:"welcome"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &s))
	assert.Equal(t, "welcome", s.Welcome)
	require.NotEmpty(t, s.SessionID)
	return s.SessionID
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t)

	w, resp := env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/messages", sendMessageReq{Text: "iphone vs pixel"})
	require.Equal(t, http.StatusOK, w.Code)
	var reply replyResp
	require.NoError(t, json.Unmarshal(resp.Data, &reply))
	assert.Equal(t, "answer to iphone vs pixel", reply.Text)
	assert.Equal(t, "answered", reply.Outcome)
	require.NotNil(t, reply.Analysis)
	assert.Equal(t, model.CategoryElectronics, reply.Analysis.Category)

	w, resp = env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hist struct {
		Records []map[string]any `json:"records"`
		Count   int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &hist))
	assert.Equal(t, 1, hist.Count)
	assert.Equal(t, "iphone vs pixel", hist.Records[0]["query"])

	w, resp = env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats statsResp
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, statsResp{Stats: "stats", Summary: "summary", Status: "status"}, stats)

	w, _ = env.do(t, http.MethodDelete, "/api/v1/sessions/"+id+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sess, err := env.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.Len())

	w, _ = env.do(t, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = env.do(t, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessage_Errors(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t)

	w, _ := env.do(t, http.MethodPost, "/api/v1/sessions/missing/messages", sendMessageReq{Text: "tv"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/messages", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/messages", sendMessageReq{Text: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_ExitEndsSession(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t)

	w, resp := env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/messages", sendMessageReq{Text: "quit"})
	require.Equal(t, http.StatusOK, w.Code)
	var reply replyResp
	require.NoError(t, json.Unmarshal(resp.Data, &reply))
	assert.True(t, reply.Ended)
	assert.Equal(t, "exit", reply.Command)

	_, err := env.store.Get(id)
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
}

func TestChat_WebSocket(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.engine)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var welcome wsOutbound
	require.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, wsTypeWelcome, welcome.Type)
	assert.Equal(t, 1, env.store.Len())

	require.NoError(t, conn.WriteJSON(wsInbound{Text: "best tv"}))
	var out wsOutbound
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, wsTypeReply, out.Type)
	require.NotNil(t, out.Reply)
	assert.Equal(t, "answer to best tv", out.Reply.Text)

	require.NoError(t, conn.WriteJSON(wsInbound{Text: " "}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, wsTypeError, out.Type)

	require.NoError(t, conn.WriteJSON(wsInbound{Text: "exit"}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.True(t, out.Reply.Ended)
}
