package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrSessionNotFound = errors.New("session not found")
)
