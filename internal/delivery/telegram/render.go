package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

const progressBarLength = 20

// page is a rendered session: HTML text plus its inline keyboard.
type page struct {
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
}

// renderPage renders the session's current page. notice is an optional
// warning shown above the page content.
func renderPage(s entities.Session, categories []string, notice string) page {
	var p page

	switch s.Page {
	case entities.PageCategorySelection:
		p = renderCategorySelection(s, categories)
	case entities.PageQuiz:
		p = renderQuiz(s)
	case entities.PageScore:
		p = renderScore(s)
	default:
		p = renderHome(s)
	}

	if notice != "" {
		p.Text = esc(notice) + "\n\n" + p.Text
	}

	return p
}

func renderHome(s entities.Session) page {
	var sb strings.Builder

	sb.WriteString(bold("🎓 Quiz Bot"))
	sb.WriteString("\n")
	sb.WriteString(esc("Test your knowledge across multiple topics! 🚀"))
	sb.WriteString("\n\n")

	if s.HasPlayerName() {
		sb.WriteString(esc("Playing as: "))
		sb.WriteString(bold(strings.TrimSpace(s.PlayerName)))
		sb.WriteString("\n")
		sb.WriteString(esc("Press Start Quiz, or send another name to change it."))
	} else {
		sb.WriteString(esc("Enter your name:"))
	}

	return page{Text: sb.String(), Keyboard: buildHomeKeyboard()}
}

func renderCategorySelection(s entities.Session, categories []string) page {
	var sb strings.Builder

	sb.WriteString(bold("📚 Select a Quiz Category"))
	sb.WriteString("\n\n")

	if len(categories) == 0 {
		sb.WriteString(esc(msgNoCategories))
		sb.WriteString("\n")
	}

	sb.WriteString(esc("Choose a category: "))
	if s.SelectedCategory == "" {
		sb.WriteString(esc(btnPlaceholder))
	} else {
		sb.WriteString(bold(s.SelectedCategory))
	}

	return page{Text: sb.String(), Keyboard: buildCategoryKeyboard(categories, s.SelectedCategory)}
}

func renderQuiz(s entities.Session) page {
	q, ok := s.CurrentQuestion()
	if !ok {
		// Unreachable through the state machine: it never enters the quiz
		// page with an empty question list.
		return page{Text: esc(msgEmptyCategory)}
	}

	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("Q%d: %s", s.QuestionIndex+1, q.Text)))
	sb.WriteString("\n\n")

	var kb *tgbotapi.InlineKeyboardMarkup
	if s.ShowFeedback {
		writeAnsweredOptions(&sb, s, q)
		sb.WriteString("\n")
		sb.WriteString(esc(s.Feedback.Message))
		sb.WriteString("\n")

		if q.HasExplanation() {
			sb.WriteString("\n")
			sb.WriteString(bold("📖 Explanation:"))
			sb.WriteString(" ")
			sb.WriteString(esc(q.Explanation))
			sb.WriteString("\n")
		}

		kb = buildQuizFeedbackKeyboard(s)
	} else {
		sb.WriteString(esc("Select an option:"))
		sb.WriteString("\n")
		kb = buildQuizAnswerKeyboard(s, q)
	}

	sb.WriteString("\n")
	sb.WriteString(esc(buildProgressBar(s.QuestionIndex+1, s.Total(), progressBarLength)))
	sb.WriteString("\n")
	sb.WriteString(bold(fmt.Sprintf("Progress: %d%% Completed", s.Progress())))

	return page{Text: sb.String(), Keyboard: kb}
}

// writeAnsweredOptions lists the options once the answer is locked in,
// marking the correct one and a wrong pick.
func writeAnsweredOptions(sb *strings.Builder, s entities.Session, q entities.Question) {
	for _, option := range q.Options {
		mark := markNeutral
		switch {
		case q.IsCorrect(option):
			mark = markCorrect
		case option == s.SelectedAnswer:
			mark = markWrong
		}
		sb.WriteString(esc(mark + option))
		sb.WriteString("\n")
	}
}

func renderScore(s entities.Session) page {
	var sb strings.Builder

	sb.WriteString(bold("🎉 Quiz Completed! 🎉"))
	sb.WriteString("\n\n")
	sb.WriteString(bold(fmt.Sprintf("🏆 Final Score: %d / %d", s.Score, s.Total())))
	sb.WriteString("\n\n")
	sb.WriteString(esc(fmt.Sprintf("Great job, %s! Keep practicing and improving! 🚀", strings.TrimSpace(s.PlayerName))))

	return page{Text: sb.String(), Keyboard: buildScoreKeyboard()}
}
