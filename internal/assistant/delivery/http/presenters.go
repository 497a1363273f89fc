package http

import (
	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/model"
	"shopping-assistant/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID string            `json:"session_id"`
	CreatedAt response.DateTime `json:"created_at"`
	Welcome   string            `json:"welcome,omitempty"`
}

func newSessionResp(sess *assistant.Session, welcome string) sessionResp {
	return sessionResp{
		SessionID: sess.ID,
		CreatedAt: response.DateTime(sess.CreatedAt),
		Welcome:   welcome,
	}
}

type analysisResp struct {
	Category   model.Category    `json:"category"`
	QueryTypes []model.QueryType `json:"query_types"`
	Budget     string            `json:"budget,omitempty"`
}

type replyResp struct {
	Text     string        `json:"text"`
	Command  string        `json:"command,omitempty"`
	Outcome  string        `json:"outcome,omitempty"`
	Attempts int           `json:"attempts,omitempty"`
	Analysis *analysisResp `json:"analysis,omitempty"`
	Ended    bool          `json:"session_ended,omitempty"`
}

func newReplyResp(r assistant.Reply) replyResp {
	resp := replyResp{
		Text:    r.Text,
		Command: string(r.Command),
		Ended:   r.Exit,
	}
	if r.Turn != nil {
		resp.Outcome = string(r.Turn.Outcome)
		resp.Attempts = r.Turn.Attempts
		resp.Analysis = &analysisResp{
			Category:   r.Turn.Analysis.Category,
			QueryTypes: r.Turn.Analysis.QueryTypes,
			Budget:     r.Turn.Analysis.Budget,
		}
	}
	return resp
}

type recordResp struct {
	Query           string            `json:"query"`
	ResponsePreview string            `json:"response_preview"`
	Timestamp       response.DateTime `json:"timestamp"`
	Category        model.Category    `json:"category"`
	QueryTypes      []model.QueryType `json:"query_types"`
	Success         bool              `json:"success"`
}

type historyResp struct {
	Records []recordResp `json:"records"`
	Count   int          `json:"count"`
}

func newHistoryResp(recs []model.ConversationRecord) historyResp {
	out := make([]recordResp, len(recs))
	for i, r := range recs {
		out[i] = recordResp{
			Query:           r.Query,
			ResponsePreview: r.ResponsePreview,
			Timestamp:       response.DateTime(r.Timestamp),
			Category:        r.Category,
			QueryTypes:      r.QueryTypes,
			Success:         r.Success,
		}
	}
	return historyResp{Records: out, Count: len(out)}
}

type statsResp struct {
	Stats   string `json:"stats"`
	Summary string `json:"summary"`
	Status  string `json:"status"`
}
