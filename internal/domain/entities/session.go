package entities

import "strings"

// Page is one of the four screens a player walks through.
type Page int

const (
	PageHome Page = iota
	PageCategorySelection
	PageQuiz
	PageScore
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageCategorySelection:
		return "category_selection"
	case PageQuiz:
		return "quiz"
	case PageScore:
		return "score"
	}
	return "unknown"
}

// FeedbackType tells whether the last submitted answer was right.
type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
)

// Feedback is shown after a submit until the player moves on.
type Feedback struct {
	Type    FeedbackType
	Message string
}

// Session is the per-chat quiz state. It is handled as a value: transitions
// return a new Session and never modify the slices of the old one.
type Session struct {
	Page             Page
	PlayerName       string
	SelectedCategory string     // empty means the placeholder is selected
	Questions        []Question // shuffled copy for the current run
	QuestionIndex    int        // 0-based, within [0, len(Questions)]
	Score            int        // correct answers so far
	Choice           int        // radio cursor over the current question's options
	SelectedAnswer   string     // set on submit, empty otherwise
	ShowFeedback     bool
	Feedback         Feedback // valid only while ShowFeedback is true
	Run              int      // incremented on every quiz start
}

// NewSession returns a session in its initial state.
func NewSession() Session {
	return Session{Page: PageHome}
}

// HasPlayerName reports whether a usable name has been entered.
func (s Session) HasPlayerName() bool {
	return strings.TrimSpace(s.PlayerName) != ""
}

// Total returns the number of questions in the current run.
func (s Session) Total() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question at QuestionIndex.
func (s Session) CurrentQuestion() (Question, bool) {
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.QuestionIndex], true
}

// IsLastQuestion reports whether the current question is the final one.
func (s Session) IsLastQuestion() bool {
	return len(s.Questions) > 0 && s.QuestionIndex == len(s.Questions)-1
}

// Progress returns the completion percentage, truncated. Zero questions
// report 0 instead of dividing by zero.
func (s Session) Progress() int {
	total := len(s.Questions)
	if total == 0 {
		return 0
	}
	return (s.QuestionIndex + 1) * 100 / total
}
