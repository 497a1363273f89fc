package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/pkg/response"
)

// CreateSession godoc
// @Summary     Start a chat session
// @Description Creates a session with empty history and returns the welcome text.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	sess := h.sessions.Create()
	h.l.Infof(c.Request.Context(), "session %s started", sess.ID)
	response.OK(c, newSessionResp(sess, h.uc.Welcome()))
}

// DeleteSession godoc
// @Summary     End a chat session
// @Description Discards the session and its history.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	if !h.sessions.Delete(c.Param("id")) {
		h.writeError(c, assistant.ErrSessionNotFound)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// SendMessage godoc
// @Summary     Send a message
// @Description Answers a shopping question or runs a command (clear, context, stats, status, help, exit).
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "Message"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sess, req, err := h.processSendMessageReq(c)
	if err != nil {
		if errors.Is(err, assistant.ErrSessionNotFound) {
			h.writeError(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Respond(ctx, sess, req.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if reply.Exit {
		h.sessions.Delete(sess.ID)
	}

	response.OK(c, newReplyResp(reply))
}

// History godoc
// @Summary     Conversation history
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	sess, err := h.processSessionReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, newHistoryResp(sess.Records()))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	sess, err := h.processSessionReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	sess.Clear()
	response.OK(c, gin.H{"cleared": true})
}

// Stats godoc
// @Summary     Conversation statistics
// @Description Returns the stats, recent-conversation summary and pacing status texts.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} statsResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	sess, err := h.processSessionReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, statsResp{
		Stats:   h.uc.Stats(sess),
		Summary: h.uc.Summary(sess),
		Status:  h.uc.Status(sess),
	})
}
