// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error and notice messages.
const (
	msgEnterName        = "⚠️ Please enter your name before starting!"
	msgUseButtons       = "Use the buttons above to continue, or /restart to start over."
	msgNoCategory       = "Choose a category first."
	msgEmptyCategory    = "This category has no questions yet."
	msgUnknownCategory  = "This category is no longer available."
	msgStale            = "This question is already behind you."
	msgAlreadySubmitted = "You have already answered this question."
	msgNotSubmitted     = "Submit your answer first."
	msgNotAllowed       = "That button does not belong to the current page."
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "Unknown command. Available commands:\n\n/start — show the quiz\n/restart — start over\n/help — quiz instructions"
	msgNoCategories     = "No categories are available right now."
)

// Button labels.
const (
	btnStartQuiz   = "▶️ Start Quiz"
	btnSubmit      = "📨 Submit Answer"
	btnNext        = "➡️ Next Question"
	btnViewScore   = "🏁 View Score"
	btnRestart     = "🔄 Restart Quiz"
	btnPlaceholder = "Select"
)

// Radio and selection markers.
const (
	markChosen   = "🔘 "
	markUnchosen = "⚪ "
	markSelected = "✅ "
	markCorrect  = "✅ "
	markWrong    = "❌ "
	markNeutral  = "▫️ "
)

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func bold(s string) string {
	return "<b>" + esc(s) + "</b>"
}

// helpMessage lists the quiz instructions.
func helpMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("📜 Quiz Instructions"))
	sb.WriteString("\n\n")
	sb.WriteString(esc("1️⃣ Select a category."))
	sb.WriteString("\n")
	sb.WriteString(esc("2️⃣ Read the question carefully."))
	sb.WriteString("\n")
	sb.WriteString(esc("3️⃣ Choose an answer and submit it."))
	sb.WriteString("\n")
	sb.WriteString(esc("4️⃣ Get feedback and explanation."))
	sb.WriteString("\n")
	sb.WriteString(esc("5️⃣ Your score is tracked throughout the quiz."))
	sb.WriteString("\n")
	sb.WriteString(esc("6️⃣ After the last question, open the score page."))
	sb.WriteString("\n\n")
	sb.WriteString(esc("📢 "))
	sb.WriteString(bold("Good Luck!"))
	sb.WriteString(esc(" 🚀"))

	return sb.String()
}
