package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var (
	ErrActionNotAllowed = errors.New("action is not allowed on this page")
	ErrEmptyName        = errors.New("player name is empty")
	ErrNoCategory       = errors.New("no category selected")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrEmptyCategory    = errors.New("category has no questions")
	ErrStaleAction      = errors.New("action refers to an outdated question")
	ErrInvalidOption    = errors.New("option index out of range")
	ErrAlreadySubmitted = errors.New("answer already submitted")
	ErrNotSubmitted     = errors.New("answer not submitted yet")
	ErrNotLastQuestion  = errors.New("score is only available after the last question")
	ErrLastQuestion     = errors.New("there is no next question")
)

const (
	feedbackCorrect   = "✅ Correct! 🎉 Keep going!"
	feedbackIncorrect = "❌ Incorrect! The correct answer is: %s"
)

// QuizMachine is the page state machine. Apply never touches the session it
// is given; on error the input session is returned as is.
type QuizMachine struct {
	bank     *entities.QuestionBank
	shuffler Shuffler
}

func NewQuizMachine(bank *entities.QuestionBank, shuffler Shuffler) *QuizMachine {
	return &QuizMachine{
		bank:     bank,
		shuffler: shuffler,
	}
}

// Apply returns the session that results from applying a to s.
func (m *QuizMachine) Apply(s entities.Session, a Action) (entities.Session, error) {
	switch a.Kind {
	case ActionShow:
		return s, nil
	case ActionRestart:
		return restart(s), nil
	}

	var (
		next entities.Session
		err  error
	)

	switch s.Page {
	case entities.PageHome:
		next, err = m.applyHome(s, a)
	case entities.PageCategorySelection:
		next, err = m.applyCategorySelection(s, a)
	case entities.PageQuiz:
		next, err = m.applyQuiz(s, a)
	default:
		err = ErrActionNotAllowed
	}

	if err != nil {
		return s, err
	}
	return next, nil
}

func (m *QuizMachine) applyHome(s entities.Session, a Action) (entities.Session, error) {
	switch a.Kind {
	case ActionEnterName:
		s.PlayerName = a.Text
		return s, nil

	case ActionStartHome:
		if !s.HasPlayerName() {
			return s, ErrEmptyName
		}
		s.PlayerName = strings.TrimSpace(s.PlayerName)
		s.Page = entities.PageCategorySelection
		return s, nil
	}

	return s, ErrActionNotAllowed
}

func (m *QuizMachine) applyCategorySelection(s entities.Session, a Action) (entities.Session, error) {
	switch a.Kind {
	case ActionSelectCategory:
		if a.Text != "" {
			if _, ok := m.bank.Category(a.Text); !ok {
				return s, fmt.Errorf("%w: %q", ErrUnknownCategory, a.Text)
			}
		}
		s.SelectedCategory = a.Text
		return s, nil

	case ActionStartQuiz:
		return m.startQuiz(s)
	}

	return s, ErrActionNotAllowed
}

func (m *QuizMachine) startQuiz(s entities.Session) (entities.Session, error) {
	if s.SelectedCategory == "" {
		return s, ErrNoCategory
	}

	category, ok := m.bank.Category(s.SelectedCategory)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownCategory, s.SelectedCategory)
	}
	if len(category.Questions) == 0 {
		return s, fmt.Errorf("%w: %q", ErrEmptyCategory, category.Name)
	}

	s.Run++
	s.Questions = shuffleQuestions(m.shuffler, category.Questions)
	s.QuestionIndex = 0
	s.Score = 0
	s = clearAnswer(s)
	s.Page = entities.PageQuiz

	return s, nil
}

func (m *QuizMachine) applyQuiz(s entities.Session, a Action) (entities.Session, error) {
	switch a.Kind {
	case ActionChooseOption, ActionSubmit, ActionNext, ActionViewScore:
	default:
		return s, ErrActionNotAllowed
	}

	if a.Run != s.Run || a.Question != s.QuestionIndex {
		return s, ErrStaleAction
	}

	q, ok := s.CurrentQuestion()
	if !ok {
		return s, ErrStaleAction
	}

	switch a.Kind {
	case ActionChooseOption:
		if s.ShowFeedback {
			return s, ErrAlreadySubmitted
		}
		if a.Option < 0 || a.Option >= len(q.Options) {
			return s, ErrInvalidOption
		}
		s.Choice = a.Option
		return s, nil

	case ActionSubmit:
		if s.ShowFeedback {
			return s, ErrAlreadySubmitted
		}
		if s.Choice < 0 || s.Choice >= len(q.Options) {
			return s, ErrInvalidOption
		}
		return submit(s, q), nil

	case ActionNext:
		if !s.ShowFeedback {
			return s, ErrNotSubmitted
		}
		if s.IsLastQuestion() {
			return s, ErrLastQuestion
		}
		s.QuestionIndex++
		return clearAnswer(s), nil

	default: // ActionViewScore
		if !s.ShowFeedback {
			return s, ErrNotSubmitted
		}
		if !s.IsLastQuestion() {
			return s, ErrNotLastQuestion
		}
		s.Page = entities.PageScore
		return s, nil
	}
}

func submit(s entities.Session, q entities.Question) entities.Session {
	s.SelectedAnswer = q.Options[s.Choice]
	s.ShowFeedback = true

	if q.IsCorrect(s.SelectedAnswer) {
		s.Score++
		s.Feedback = entities.Feedback{
			Type:    entities.FeedbackSuccess,
			Message: feedbackCorrect,
		}
		return s
	}

	s.Feedback = entities.Feedback{
		Type:    entities.FeedbackError,
		Message: fmt.Sprintf(feedbackIncorrect, q.Answer),
	}
	return s
}

func clearAnswer(s entities.Session) entities.Session {
	s.Choice = 0
	s.SelectedAnswer = ""
	s.ShowFeedback = false
	s.Feedback = entities.Feedback{}
	return s
}

// restart goes back to the home page. The player name is kept; the category
// and the questions of the finished run are dropped.
func restart(s entities.Session) entities.Session {
	s.Page = entities.PageHome
	s.QuestionIndex = 0
	s.Score = 0
	s.SelectedCategory = ""
	s.Questions = nil
	return clearAnswer(s)
}
