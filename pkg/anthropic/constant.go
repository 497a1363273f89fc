package anthropic

import "time"

const (
	DefaultModel     = "claude-sonnet-4-5"
	DefaultMaxTokens = 1500
	DefaultTimeout   = 30 * time.Second

	RoleUser      = "user"
	RoleAssistant = "assistant"
)
