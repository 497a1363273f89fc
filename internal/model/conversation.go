package model

import "time"

// ConversationRecord is one completed turn kept in a session's history.
type ConversationRecord struct {
	Query           string      `json:"query"`
	ResponsePreview string      `json:"response_preview"`
	Timestamp       time.Time   `json:"timestamp"`
	Category        Category    `json:"category"`
	QueryTypes      []QueryType `json:"query_types"`
	Success         bool        `json:"success"`
}
