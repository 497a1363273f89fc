package retry

import (
	"context"
	"strings"
	"time"

	"shopping-assistant/internal/metrics"
	pkgLog "shopping-assistant/pkg/log"
)

// Waiter gates each attempt. *ratelimit.Limiter satisfies it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Call is one attempt at the external call.
type Call func(ctx context.Context) (string, error)

// Config tunes the retry loop.
type Config struct {
	MaxAttempts  int
	RetryDelay   time.Duration
	ErrorMarkers []string
}

// Outcome is the result of Invoke. Value is only meaningful when OK is true.
type Outcome struct {
	Value    string
	OK       bool
	Attempts int
}

// Invoker runs a Call through the limiter with a bounded fixed-delay retry.
type Invoker struct {
	l       pkgLog.Logger
	limiter Waiter
	cfg     Config
}

// New creates an Invoker. MaxAttempts below 1 is treated as 1.
func New(l pkgLog.Logger, limiter Waiter, cfg Config) *Invoker {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Invoker{l: l, limiter: limiter, cfg: cfg}
}

// Invoke runs call until it yields a usable answer or attempts run out.
// Call failures are logged and folded into a failed Outcome; the returned
// error is non-nil only when ctx ends, in which case the turn is abandoned.
func (i *Invoker) Invoke(ctx context.Context, call Call) (Outcome, error) {
	for attempt := 1; attempt <= i.cfg.MaxAttempts; attempt++ {
		if err := i.limiter.Wait(ctx); err != nil {
			return Outcome{Attempts: attempt - 1}, err
		}

		i.l.Debugf(ctx, "%s: attempt %d/%d", logPrefixInvoke, attempt, i.cfg.MaxAttempts)
		value, err := call(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Outcome{Attempts: attempt}, ctxErr
		}

		result := i.classify(value, err)
		metrics.CallAttempts.WithLabelValues(result).Inc()
		if result == metrics.AttemptOK {
			return Outcome{Value: value, OK: true, Attempts: attempt}, nil
		}

		if err != nil {
			i.l.Warnf(ctx, "%s: attempt %d/%d failed: %v", logPrefixInvoke, attempt, i.cfg.MaxAttempts, err)
		} else {
			i.l.Warnf(ctx, "%s: attempt %d/%d returned %s result", logPrefixInvoke, attempt, i.cfg.MaxAttempts, result)
		}

		if attempt == i.cfg.MaxAttempts {
			break
		}
		if err := sleep(ctx, i.cfg.RetryDelay); err != nil {
			return Outcome{Attempts: attempt}, err
		}
	}

	i.l.Warnf(ctx, "%s: giving up after %d attempt(s)", logPrefixInvoke, i.cfg.MaxAttempts)
	return Outcome{Attempts: i.cfg.MaxAttempts}, nil
}

func (i *Invoker) classify(value string, err error) string {
	if err != nil {
		return metrics.AttemptError
	}
	if strings.TrimSpace(value) == "" {
		return metrics.AttemptEmpty
	}
	for _, marker := range i.cfg.ErrorMarkers {
		if marker != "" && strings.Contains(value, marker) {
			return metrics.AttemptFlagged
		}
	}
	return metrics.AttemptOK
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
