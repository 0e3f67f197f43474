package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// buildHomeKeyboard builds keyboard for the home page.
func buildHomeKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnStartQuiz, buildHomeStartCallback()),
		),
	)
	return &kb
}

// buildCategoryKeyboard lists the placeholder and every category, one per row.
// The start button only appears once a real category is selected.
func buildCategoryKeyboard(categories []string, selected string) *tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)+2)

	placeholder := markNeutral + btnPlaceholder
	if selected == "" {
		placeholder = markSelected + btnPlaceholder
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(placeholder, buildCategoryPickCallback(placeholderIndex)),
	))

	for i, name := range categories {
		label := markNeutral + name
		if name == selected {
			label = markSelected + name
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildCategoryPickCallback(i)),
		))
	}

	if selected != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnStartQuiz, buildCategoryStartCallback()),
		))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildQuizAnswerKeyboard builds the radio options and the submit button.
func buildQuizAnswerKeyboard(s entities.Session, q entities.Question) *tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		label := markUnchosen + option
		if i == s.Choice {
			label = markChosen + option
		}
		data := buildQuizOptionCallback(s.Run, s.QuestionIndex, i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnSubmit, buildQuizSubmitCallback(s.Run, s.QuestionIndex)),
	))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildQuizFeedbackKeyboard offers the next question, or the score on the last one.
func buildQuizFeedbackKeyboard(s entities.Session) *tgbotapi.InlineKeyboardMarkup {
	btn := tgbotapi.NewInlineKeyboardButtonData(btnNext, buildQuizNextCallback(s.Run, s.QuestionIndex))
	if s.IsLastQuestion() {
		btn = tgbotapi.NewInlineKeyboardButtonData(btnViewScore, buildQuizScoreCallback(s.Run, s.QuestionIndex))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btn))
	return &kb
}

// buildScoreKeyboard builds keyboard for the score page.
func buildScoreKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnRestart, buildScoreRestartCallback()),
		),
	)
	return &kb
}
