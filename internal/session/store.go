package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/metrics"
)

const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Config bounds the store.
type Config struct {
	TTL          time.Duration
	MaxSessions  int
	HistoryLimit int
}

// Store keeps live sessions in memory. Idle sessions expire after TTL and
// the least recently used one is evicted once MaxSessions is reached.
type Store struct {
	mu           sync.Mutex
	sessions     *expirable.LRU[string, *assistant.Session]
	historyLimit int
}

// New creates an empty store.
func New(cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	onEvict := func(_ string, _ *assistant.Session) {
		metrics.ActiveSessions.Dec()
	}
	return &Store{
		sessions:     expirable.NewLRU[string, *assistant.Session](cfg.MaxSessions, onEvict, cfg.TTL),
		historyLimit: cfg.HistoryLimit,
	}
}

// Create starts a session under a fresh random ID.
func (s *Store) Create() *assistant.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(uuid.NewString())
}

// GetOrCreate returns the session stored under key, starting one if needed.
// Front-ends with their own identity (a Telegram chat) key sessions by it.
func (s *Store) GetOrCreate(key string) *assistant.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions.Get(key); ok {
		s.sessions.Add(key, sess)
		return sess
	}
	return s.add(key)
}

// Get returns a live session and refreshes its TTL.
func (s *Store) Get(id string) (*assistant.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, assistant.ErrSessionNotFound
	}
	s.sessions.Add(id, sess)
	return sess, nil
}

// Delete ends a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}

// add starts a session under key. An expired entry the cleanup has not
// reached yet is removed first so the gauge sees its eviction.
func (s *Store) add(key string) *assistant.Session {
	s.sessions.Remove(key)

	sess := assistant.NewSession(key, s.historyLimit)
	s.sessions.Add(key, sess)
	metrics.ActiveSessions.Inc()
	return sess
}
