package telegram

const (
	defaultAPIBase = "https://api.telegram.org/bot"

	// MaxMessageLength is Telegram's limit on one message, in UTF-16 units.
	// Splitting on runes at this size stays under it for BMP text.
	MaxMessageLength = 4000

	ParseModeMarkdown = "Markdown"
	ChatActionTyping  = "typing"
)
