package usecase

const (
	logPrefixHandle = "internal.assistant.usecase.Handle"

	previewEllipsis    = "..."
	summaryTurns       = 3
	summaryQueryLength = 50

	noConversationMessage = "No previous conversation."
	noStatsMessage        = "No conversations yet."
	clearedMessage        = "🧹 **Conversation history cleared!** Ready for new shopping questions."
	goodbyeMessage        = "👋 Thank you for using Shopping Assistant! Happy shopping!"

	welcomeMessage = `# 🛍️ Welcome to Your AI Shopping Assistant!

I'm here to help you make informed shopping decisions with:

## 🎯 **What I Can Help With:**
- **Product Comparisons** - iPhone vs Samsung, laptop comparisons, etc.
- **Buying Recommendations** - Best products for your needs and budget
- **Feature Analysis** - Detailed specifications and capabilities
- **Price Guidance** - Value for money and budget considerations
- **Service Comparisons** - Netflix vs Amazon Prime, streaming services

## 🔥 **Try These Examples:**
- *"Compare iPhone 15 vs Samsung Galaxy S24"*
- *"Best laptop for programming under $1000"*
- *"Sony WH-1000XM5 vs Bose QuietComfort 45"*
- *"Netflix vs Amazon Prime comparison"*
- *"Which air purifier is best for allergies?"*

## 🎮 **Commands:**
- Type **` + "`help`" + `** - Show available commands
- Type **` + "`clear`" + `** - Clear conversation history
- Type **` + "`stats`" + `** - Show conversation statistics

*Ready to help you shop smarter! What are you looking for today?*`

	helpMessage = `## 🛍️ Shopping Assistant Help

### 🔍 **Product Research:**
- *"Compare [Product A] vs [Product B]"*
- *"Best [product] under $[budget]"*
- *"[Product name] features and specs"*
- *"Is [product] worth buying?"*

### 📱 **Example Queries:**
- *"iPhone 15 vs Samsung Galaxy S24 camera comparison"*
- *"Best gaming laptop under $1500"*
- *"Sony WH-1000XM5 headphones review"*
- *"Netflix vs Amazon Prime which is better"*
- *"Air purifier recommendations for allergies"*

### 🎮 **Commands:**
- **` + "`clear`" + `** - Clear conversation history
- **` + "`context`" + `** - Show recent conversation
- **` + "`stats`" + `** - Show conversation statistics
- **` + "`status`" + `** - Show rate limit status
- **` + "`help`" + `** - Show this help message

### 💡 **Tips for Better Results:**
- Be specific about your needs and budget
- Mention your use case (gaming, work, family, etc.)
- Ask follow-up questions for more details
- I can help with electronics, appliances, services, and more!

**What would you like to know about?**`

	examplesMessage = `Example queries you can try:
• 'What are the features of iPhone 15 vs Samsung S24?'
• 'Which air purifier is best under $200?'
• 'Tell me about the latest washing machines from LG'
• 'Compare Netflix and Amazon Prime in terms of content and pricing'
• 'Best laptop for programming under $1000'
• 'Sony WH-1000XM5 vs Bose QuietComfort 45 headphones'`
)
