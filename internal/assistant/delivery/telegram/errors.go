package telegram

const failureMessage = "⚠️ Sorry, something went wrong while handling your message. Please try again."
