package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrSessionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, assistant.ErrEmptyInput):
		response.Error(c, err, nil)
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		c.Status(499)
	default:
		h.l.Errorf(c.Request.Context(), "internal.assistant.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
