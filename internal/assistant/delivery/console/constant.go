package console

const (
	rule = "============================================================"

	bannerTemplate = `
%s
🛍️  INTELLIGENT SHOPPING ASSISTANT CHATBOT  🛍️
%s
I can help you with:
• Product comparisons and recommendations
• Feature analysis and specifications
• Price research and deals
• Service comparisons (Netflix, Amazon Prime, etc.)
• Purchase advice based on your needs

⚠️  Note: Answers may be rate-limited. I'll provide fallback info if needed.
Backend: %s

Commands:
• Type 'exit' or 'quit' to end
• Type 'clear' to clear conversation history
• Type 'context' to see conversation summary
• Type 'stats' to see conversation statistics
• Type 'status' to check system status
• Type 'help' for tips
%s
`

	promptLabel     = "👤 You: "
	assistantLabel  = "🤖 Assistant: "
	interruptedTurn = "🛑 Query interrupted by user."
	interruptedExit = "👋 Shopping Assistant interrupted. Goodbye!"
	goodbyeMessage  = "👋 Thank you for using Shopping Assistant! Happy shopping!"
	answeredNotice  = "✅ Successfully retrieved current information"
	fallbackNotice  = "⚠️ Live answer unavailable, using fallback response"
	failedTurn      = "❌ Unexpected error. 🔄 Please try a simpler question or check your internet connection."

	wordWrap = 100
)
