package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-assistant/pkg/response"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, 0, resp.ErrorCode)
		assert.Equal(t, response.MessageSuccess, resp.Message)
		assert.Equal(t, map[string]any{"foo": "bar"}, resp.Data)
	})

	t.Run("Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("test err"), map[string]any{"field": "invalid"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.Equal(t, 1, resp.ErrorCode)
		assert.Equal(t, "test err", resp.Message)
	})

	t.Run("Error nil data", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("test err nil"), nil)

		assert.NotNil(t, decode(t, w).Data)
	})

	t.Run("InternalError hides cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("provider key leaked"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.DefaultErrorMessage, decode(t, w).Message)
	})

	t.Run("NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.NotFound(c, errors.New("session not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "session not found", decode(t, w).Message)
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.True(t, c.IsAborted())
	})
}
