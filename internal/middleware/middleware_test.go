package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"shopping-assistant/pkg/log"
)

func newEngine(t *testing.T, mw Middleware) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func get(r *gin.Engine, ip string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":4321"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_PerClient(t *testing.T) {
	// 10/min gives a burst of one request per client.
	r := newEngine(t, New(log.NewTest(t), 10))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1", nil).Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2", nil).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newEngine(t, New(log.NewTest(t), 0))

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", nil).Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(t, New(log.NewTest(t), 0))

	w := get(r, "10.0.0.1", map[string]string{HeaderRequestID: "abc-123"})
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = get(r, "10.0.0.1", nil)
	assert.NotEmpty(t, w.Body.String())
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{name: "forwarded for", header: map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2"}, remote: "3.3.3.3:1", want: "1.1.1.1"},
		{name: "real ip", header: map[string]string{"X-Real-IP": "4.4.4.4"}, remote: "3.3.3.3:1", want: "4.4.4.4"},
		{name: "remote addr", remote: "3.3.3.3:1", want: "3.3.3.3"},
		{name: "bare remote", remote: "pipe", want: "pipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractIP(req))
		})
	}
}
