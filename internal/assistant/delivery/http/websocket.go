package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsTypeWelcome = "welcome"
	wsTypeReply   = "reply"
	wsTypeError   = "error"
)

type wsInbound struct {
	Text string `json:"text"`
}

type wsOutbound struct {
	Type  string     `json:"type"`
	Reply *replyResp `json:"reply,omitempty"`
	Text  string     `json:"text,omitempty"`
}

// Chat godoc
// @Summary     Web chat over WebSocket
// @Description One session per connection, discarded when the socket closes. Send {"text": "..."}; receive {"type": "reply", "reply": {...}}.
// @Tags        Assistant
// @Router      /api/v1/chat/ws [GET]
func (h *handler) Chat(c *gin.Context) {
	conn, err := h.wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer cancel()

	sess := h.sessions.Create()
	defer h.sessions.Delete(sess.ID)
	h.l.Infof(ctx, "websocket session %s started", sess.ID)

	if err := conn.WriteJSON(wsOutbound{Type: wsTypeWelcome, Text: h.uc.Welcome()}); err != nil {
		return
	}

	// The reader cancels ctx when the socket closes, which abandons any
	// turn still in flight.
	inbox := make(chan string)
	go func() {
		defer cancel()
		defer close(inbox)
		for {
			var in wsInbound
			if err := conn.ReadJSON(&in); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.l.Warnf(ctx, "websocket session %s read failed: %v", sess.ID, err)
				}
				return
			}
			select {
			case inbox <- in.Text:
			case <-ctx.Done():
				return
			}
		}
	}()

	for text := range inbox {
		reply, err := h.uc.Respond(ctx, sess, text)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			h.l.Warnf(ctx, "websocket session %s: %v", sess.ID, err)
			if werr := conn.WriteJSON(wsOutbound{Type: wsTypeError, Text: err.Error()}); werr != nil {
				break
			}
			continue
		}

		out := newReplyResp(reply)
		if err := conn.WriteJSON(wsOutbound{Type: wsTypeReply, Reply: &out}); err != nil {
			break
		}
		if reply.Exit {
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
			break
		}
	}

	h.l.Infof(ctx, "websocket session %s ended", sess.ID)
}
