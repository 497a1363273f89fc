package openaicompat

import "time"

// Base URLs of OpenAI compatible chat completion APIs.
const (
	GroqBaseURL     = "https://api.groq.com/openai/v1"
	OpenAIBaseURL   = "https://api.openai.com/v1"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

const (
	DefaultModel      = "llama-3.3-70b-versatile"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
