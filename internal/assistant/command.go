package assistant

import "strings"

// Command is a control word understood by every front-end.
type Command string

const (
	CommandExit    Command = "exit"
	CommandClear   Command = "clear"
	CommandContext Command = "context"
	CommandStats   Command = "stats"
	CommandStatus  Command = "status"
	CommandHelp    Command = "help"
	CommandStart   Command = "start"
)

var commandWords = map[string]Command{
	"exit":    CommandExit,
	"quit":    CommandExit,
	"clear":   CommandClear,
	"context": CommandContext,
	"stats":   CommandStats,
	"status":  CommandStatus,
	"help":    CommandHelp,
	"start":   CommandStart,
}

// ParseCommand reports whether text is a command. Matching ignores case,
// surrounding space, a leading slash and a Telegram "@bot" suffix.
func ParseCommand(text string) (Command, bool) {
	word := strings.ToLower(strings.TrimSpace(text))
	if strings.HasPrefix(word, "/") {
		word = strings.TrimPrefix(word, "/")
		if at := strings.IndexByte(word, '@'); at >= 0 {
			word = word[:at]
		}
	}

	cmd, ok := commandWords[word]
	return cmd, ok
}
