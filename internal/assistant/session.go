package assistant

import (
	"sync"
	"time"

	"shopping-assistant/internal/model"
)

// DefaultHistoryLimit caps a session's history when none is configured.
const DefaultHistoryLimit = 100

// Session is one user's conversation. History is append-only and bounded;
// when full the oldest record is dropped.
type Session struct {
	ID        string
	CreatedAt time.Time

	limit int

	mu      sync.Mutex
	history []model.ConversationRecord

	// turn serialises query turns within the session.
	turn sync.Mutex
}

// NewSession creates an empty session.
func NewSession(id string, historyLimit int) *Session {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		limit:     historyLimit,
	}
}

// Append adds a record, evicting the oldest when the limit is reached.
func (s *Session) Append(rec model.ConversationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) >= s.limit {
		drop := len(s.history) - s.limit + 1
		s.history = append(s.history[:0:0], s.history[drop:]...)
	}
	s.history = append(s.history, rec)
}

// Records returns a copy of the history, oldest first.
func (s *Session) Records() []model.ConversationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ConversationRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Clear empties the history.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// LockTurn blocks until no other turn runs in the session and returns the
// matching unlock.
func (s *Session) LockTurn() func() {
	s.turn.Lock()
	return s.turn.Unlock
}
