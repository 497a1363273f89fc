package retry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "shopping-assistant/pkg/log"
)

type fakeWaiter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (w *fakeWaiter) Wait(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.err != nil {
		return w.err
	}
	return ctx.Err()
}

type scriptedCall struct {
	results []string
	errs    []error
	times   []time.Time
}

func (s *scriptedCall) call(ctx context.Context) (string, error) {
	n := len(s.times)
	s.times = append(s.times, time.Now())
	var (
		res string
		err error
	)
	if n < len(s.results) {
		res = s.results[n]
	}
	if n < len(s.errs) {
		err = s.errs[n]
	}
	return res, err
}

func newInvoker(t *testing.T, w Waiter, cfg Config) *Invoker {
	return New(pkgLog.NewTest(t), w, cfg)
}

func TestInvoke_AlwaysFails(t *testing.T) {
	delay := 40 * time.Millisecond
	w := &fakeWaiter{}
	boom := errors.New("boom")
	sc := &scriptedCall{errs: []error{boom, boom, boom, boom}}

	out, err := newInvoker(t, w, Config{MaxAttempts: 3, RetryDelay: delay}).Invoke(context.Background(), sc.call)

	require.NoError(t, err)
	assert.False(t, out.OK)
	assert.Empty(t, out.Value)
	assert.Equal(t, 3, out.Attempts)
	assert.Len(t, sc.times, 3)
	assert.Equal(t, 3, w.calls)
	for i := 1; i < len(sc.times); i++ {
		assert.GreaterOrEqual(t, sc.times[i].Sub(sc.times[i-1]), delay)
	}
}

func TestInvoke_SucceedsOnSecondAttempt(t *testing.T) {
	w := &fakeWaiter{}
	sc := &scriptedCall{
		results: []string{"", "a great answer", "never"},
		errs:    []error{errors.New("timeout")},
	}

	out, err := newInvoker(t, w, Config{MaxAttempts: 3, RetryDelay: time.Millisecond}).Invoke(context.Background(), sc.call)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "a great answer", out.Value)
	assert.Equal(t, 2, out.Attempts)
	assert.Len(t, sc.times, 2)
}

func TestInvoke_EmptyAndFlaggedResultsRetry(t *testing.T) {
	sc := &scriptedCall{results: []string{"   ", "Error: tool failed", "fine"}}

	out, err := newInvoker(t, &fakeWaiter{}, Config{
		MaxAttempts:  3,
		ErrorMarkers: []string{"Error"},
	}).Invoke(context.Background(), sc.call)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "fine", out.Value)
	assert.Equal(t, 3, out.Attempts)
}

func TestInvoke_SingleAttempt(t *testing.T) {
	sc := &scriptedCall{errs: []error{errors.New("down")}}

	out, err := newInvoker(t, &fakeWaiter{}, Config{MaxAttempts: 0, RetryDelay: time.Hour}).Invoke(context.Background(), sc.call)

	require.NoError(t, err)
	assert.False(t, out.OK)
	assert.Equal(t, 1, out.Attempts)
}

func TestInvoke_CancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sc := &scriptedCall{errs: []error{errors.New("down")}}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	out, err := newInvoker(t, &fakeWaiter{}, Config{MaxAttempts: 3, RetryDelay: time.Hour}).Invoke(ctx, sc.call)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, out.OK)
	assert.Len(t, sc.times, 1)
}

func TestInvoke_LimiterCancelled(t *testing.T) {
	w := &fakeWaiter{err: context.Canceled}
	sc := &scriptedCall{results: []string{"ok"}}

	out, err := newInvoker(t, w, Config{MaxAttempts: 3}).Invoke(context.Background(), sc.call)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, out.OK)
	assert.Empty(t, sc.times)
}
