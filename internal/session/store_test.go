package session

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/metrics"
	"shopping-assistant/internal/model"
)

func TestStore_CreateGetDelete(t *testing.T) {
	s := New(Config{HistoryLimit: 10})

	sess := s.Create()
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	assert.True(t, s.Delete(sess.ID))
	assert.False(t, s.Delete(sess.ID))

	_, err = s.Get(sess.ID)
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
}

func TestStore_CreateUsesDistinctIDs(t *testing.T) {
	s := New(Config{})
	assert.NotEqual(t, s.Create().ID, s.Create().ID)
}

func TestStore_GetOrCreateKeepsHistory(t *testing.T) {
	s := New(Config{})

	first := s.GetOrCreate("telegram_42")
	first.Append(model.ConversationRecord{Query: "best tv"})

	second := s.GetOrCreate("telegram_42")
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Len())
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s := New(Config{MaxSessions: 2})

	a := s.GetOrCreate("a")
	s.GetOrCreate("b")
	_, err := s.Get("a")
	require.NoError(t, err)
	s.GetOrCreate("c")

	_, err = s.Get("b")
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestStore_Expires(t *testing.T) {
	s := New(Config{TTL: 20 * time.Millisecond})
	sess := s.Create()

	time.Sleep(60 * time.Millisecond)

	_, err := s.Get(sess.ID)
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
}

func TestStore_ActiveSessionsGaugeAfterExpiry(t *testing.T) {
	s := New(Config{TTL: 30 * time.Millisecond})
	before := testutil.ToFloat64(metrics.ActiveSessions)

	first := s.GetOrCreate("telegram_1")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveSessions))

	time.Sleep(40 * time.Millisecond)

	second := s.GetOrCreate("telegram_1")
	assert.NotSame(t, first, second)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveSessions))
	assert.Equal(t, 1, s.Len())

	require.True(t, s.Delete("telegram_1"))
	assert.Equal(t, before, testutil.ToFloat64(metrics.ActiveSessions))
}
