package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_FirstCallImmediate(t *testing.T) {
	l := New(time.Second)

	_, ok := l.LastCall()
	assert.False(t, ok)

	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	last, ok := l.LastCall()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now(), last, 100*time.Millisecond)
}

func TestLimiter_EnforcesInterval(t *testing.T) {
	interval := 80 * time.Millisecond
	l := New(interval)

	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	require.NoError(t, l.Wait(context.Background()))
	require.NoError(t, l.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 2*interval*9/10)
}

func TestLimiter_NoWaitAfterIdle(t *testing.T) {
	interval := 30 * time.Millisecond
	l := New(interval)

	require.NoError(t, l.Wait(context.Background()))
	time.Sleep(2 * interval)

	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.Less(t, time.Since(start), interval/2)
}

func TestLimiter_ZeroInterval(t *testing.T) {
	l := New(0)
	assert.Equal(t, time.Duration(0), l.Interval())

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestLimiter_Cancelled(t *testing.T) {
	l := New(time.Hour)
	require.NoError(t, l.Wait(context.Background()))
	first, _ := l.LastCall()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	last, _ := l.LastCall()
	assert.Equal(t, first, last)
}
