package usecase

import (
	"context"
	"time"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/caller"
	"shopping-assistant/internal/retry"
	pkgLog "shopping-assistant/pkg/log"
)

// Invoker runs a call with pacing and retries. *retry.Invoker satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, call retry.Call) (retry.Outcome, error)
}

// Pacer reports the shared call pacing. *ratelimit.Limiter satisfies it.
type Pacer interface {
	LastCall() (time.Time, bool)
	Interval() time.Duration
}

// Options tunes the use case.
type Options struct {
	PreviewLength int
}

type implUseCase struct {
	l          pkgLog.Logger
	caller     caller.Caller
	invoker    Invoker
	pacer      Pacer
	previewLen int
	now        func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	c caller.Caller,
	invoker Invoker,
	pacer Pacer,
	opts Options,
) assistant.UseCase {
	if opts.PreviewLength <= 0 {
		opts.PreviewLength = 200
	}
	return &implUseCase{
		l:          l,
		caller:     c,
		invoker:    invoker,
		pacer:      pacer,
		previewLen: opts.PreviewLength,
		now:        time.Now,
	}
}
