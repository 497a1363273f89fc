package assistant

import "shopping-assistant/internal/model"

// Outcome says where a turn's answer came from.
type Outcome string

const (
	OutcomeAnswered Outcome = "answered"
	OutcomeFallback Outcome = "fallback"
	OutcomeApology  Outcome = "apology"
)

// HandleInput is one user query.
type HandleInput struct {
	Text string
}

// HandleOutput is the answer to a query turn.
type HandleOutput struct {
	Response string              `json:"response"`
	Analysis model.QueryAnalysis `json:"analysis"`
	Outcome  Outcome             `json:"outcome"`
	Attempts int                 `json:"attempts"`
}

// Reply is what a front-end shows for one line of user input, either a
// command result or a query answer.
type Reply struct {
	Text    string
	Command Command       // empty for query turns
	Turn    *HandleOutput // nil for commands
	Exit    bool
}
