package http

import (
	"github.com/gin-gonic/gin"

	"shopping-assistant/internal/assistant"
)

// processSessionReq resolves the :id path parameter to a live session.
func (h *handler) processSessionReq(c *gin.Context) (*assistant.Session, error) {
	return h.sessions.Get(c.Param("id"))
}

// processSendMessageReq binds the message body and resolves the session.
func (h *handler) processSendMessageReq(c *gin.Context) (*assistant.Session, sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, req, err
	}
	sess, err := h.processSessionReq(c)
	return sess, req, err
}
