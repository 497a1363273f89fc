package assistant

import "context"

// UseCase defines the shopping assistant's conversation logic.
type UseCase interface {
	// Respond routes one line of input to a command or a query turn.
	Respond(ctx context.Context, sess *Session, text string) (Reply, error)

	// Handle runs a query turn: analyse, call out with retries, fall back
	// to offline advice, record history. A non-nil error means the turn was
	// abandoned and nothing was recorded.
	Handle(ctx context.Context, sess *Session, input HandleInput) (HandleOutput, error)

	Summary(sess *Session) string
	Stats(sess *Session) string
	Status(sess *Session) string
	Help() string
	Welcome() string
	Examples() string
}
