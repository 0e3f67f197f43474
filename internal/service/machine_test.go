package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// keepOrder leaves slices as they are, so tests can predict question and option order.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

func testBank() *entities.QuestionBank {
	return entities.NewQuestionBank([]entities.Category{
		{
			Name: "Basics",
			Questions: []entities.Question{
				{Text: "q1", Options: []string{"A", "B", "C"}, Answer: "B", Explanation: "B is right"},
				{Text: "q2", Options: []string{"yes", "no"}, Answer: "yes"},
				{Text: "q3", Options: []string{"1", "2", "3", "4"}, Answer: "4", Explanation: "  "},
				{Text: "q4", Options: []string{"x", "y"}, Answer: "x"},
				{Text: "q5", Options: []string{"up", "down"}, Answer: "down"},
			},
		},
		{
			Name: "Single",
			Questions: []entities.Question{
				{Text: "only", Options: []string{"A", "B", "C"}, Answer: "B"},
			},
		},
		{Name: "Empty"},
	})
}

func mustApply(t *testing.T, m *QuizMachine, s entities.Session, actions ...Action) entities.Session {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = m.Apply(s, a)
		require.NoError(t, err, "action %s on page %s", a.Kind, s.Page)
	}
	return s
}

// quizSession returns a session on the first question of category.
func quizSession(t *testing.T, m *QuizMachine, category string) entities.Session {
	t.Helper()
	return mustApply(t, m, entities.NewSession(),
		EnterName("Ada"),
		StartHome(),
		SelectCategory(category),
		StartQuiz(),
	)
}

func TestHomeRequiresName(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})

	for _, name := range []string{"", " ", "\t\n  "} {
		s := mustApply(t, m, entities.NewSession(), EnterName(name))

		next, err := m.Apply(s, StartHome())
		require.ErrorIs(t, err, ErrEmptyName, "name %q", name)
		assert.Equal(t, s, next)
		assert.Equal(t, entities.PageHome, next.Page)
	}
}

func TestHomeStartTrimsName(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})

	s := mustApply(t, m, entities.NewSession(), EnterName("  Ada "), StartHome())

	assert.Equal(t, entities.PageCategorySelection, s.Page)
	assert.Equal(t, "Ada", s.PlayerName)
}

func TestHomeRejectsOtherActions(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})

	for _, a := range []Action{SelectCategory("Basics"), StartQuiz(), Submit(0, 0), Next(0, 0), ViewScore(0, 0)} {
		_, err := m.Apply(entities.NewSession(), a)
		assert.ErrorIs(t, err, ErrActionNotAllowed, a.Kind.String())
	}
}

func TestStartQuizRequiresCategory(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := mustApply(t, m, entities.NewSession(), EnterName("Ada"), StartHome())

	_, err := m.Apply(s, StartQuiz())
	require.ErrorIs(t, err, ErrNoCategory)

	s = mustApply(t, m, s, SelectCategory("Basics"), SelectCategory(""))
	_, err = m.Apply(s, StartQuiz())
	require.ErrorIs(t, err, ErrNoCategory)

	_, err = m.Apply(s, SelectCategory("Unknown"))
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestStartQuizRefusesEmptyCategory(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := mustApply(t, m, entities.NewSession(), EnterName("Ada"), StartHome(), SelectCategory("Empty"))

	next, err := m.Apply(s, StartQuiz())
	require.ErrorIs(t, err, ErrEmptyCategory)
	assert.Equal(t, entities.PageCategorySelection, next.Page)
}

func TestStartQuizResetsRun(t *testing.T) {
	m := NewQuizMachine(testBank(), NewSeededShuffler(3))
	s := quizSession(t, m, "Basics")

	assert.Equal(t, entities.PageQuiz, s.Page)
	assert.Equal(t, 1, s.Run)
	assert.Zero(t, s.QuestionIndex)
	assert.Zero(t, s.Score)
	assert.False(t, s.ShowFeedback)
	assert.Len(t, s.Questions, 5)
}

func TestShuffledRunIsPermutationOfCategory(t *testing.T) {
	bank := testBank()
	m := NewQuizMachine(bank, NewRandomShuffler())
	basics, _ := bank.Category("Basics")

	for i := 0; i < 25; i++ {
		s := quizSession(t, m, "Basics")
		require.Len(t, s.Questions, len(basics.Questions))

		remaining := make(map[string]entities.Question)
		for _, q := range basics.Questions {
			remaining[q.Text] = q
		}
		for _, q := range s.Questions {
			orig, ok := remaining[q.Text]
			require.True(t, ok)
			delete(remaining, q.Text)
			assert.ElementsMatch(t, orig.Options, q.Options)
			assert.Contains(t, q.Options, q.Answer)
		}
		assert.Empty(t, remaining)
	}

	// The bank itself is never reordered.
	again, _ := bank.Category("Basics")
	assert.Equal(t, []string{"A", "B", "C"}, again.Questions[0].Options)
	assert.Equal(t, "q1", again.Questions[0].Text)
}

func TestSubmitScoring(t *testing.T) {
	tests := []struct {
		name      string
		option    int
		wantScore int
		wantType  entities.FeedbackType
		wantMsg   string
	}{
		{name: "correct", option: 1, wantScore: 1, wantType: entities.FeedbackSuccess, wantMsg: "✅ Correct! 🎉 Keep going!"},
		{name: "first wrong", option: 0, wantScore: 0, wantType: entities.FeedbackError, wantMsg: "❌ Incorrect! The correct answer is: B"},
		{name: "last wrong", option: 2, wantScore: 0, wantType: entities.FeedbackError, wantMsg: "❌ Incorrect! The correct answer is: B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewQuizMachine(testBank(), keepOrder{})
			s := quizSession(t, m, "Single")

			s = mustApply(t, m, s, ChooseOption(s.Run, 0, tt.option), Submit(s.Run, 0))

			assert.Equal(t, tt.wantScore, s.Score)
			assert.True(t, s.ShowFeedback)
			assert.Equal(t, []string{"A", "B", "C"}[tt.option], s.SelectedAnswer)
			assert.Equal(t, tt.wantType, s.Feedback.Type)
			assert.Equal(t, tt.wantMsg, s.Feedback.Message)
		})
	}
}

func TestSubmitDefaultsToFirstOption(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Single")

	s = mustApply(t, m, s, Submit(s.Run, 0))

	assert.Equal(t, "A", s.SelectedAnswer)
	assert.Zero(t, s.Score)
}

func TestSecondSubmitIsIgnored(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Single")
	s = mustApply(t, m, s, ChooseOption(s.Run, 0, 1), Submit(s.Run, 0))

	next, err := m.Apply(s, Submit(s.Run, 0))
	require.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, s, next)

	_, err = m.Apply(s, ChooseOption(s.Run, 0, 0))
	require.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, entities.FeedbackSuccess, s.Feedback.Type)
}

func TestChooseOptionOutOfRange(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Single")

	for _, opt := range []int{-1, 3} {
		_, err := m.Apply(s, ChooseOption(s.Run, 0, opt))
		assert.ErrorIs(t, err, ErrInvalidOption)
	}
}

func TestNextAdvancesAndClearsFeedback(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Basics")

	_, err := m.Apply(s, Next(s.Run, 0))
	require.ErrorIs(t, err, ErrNotSubmitted)

	s = mustApply(t, m, s, ChooseOption(s.Run, 0, 2), Submit(s.Run, 0), Next(s.Run, 0))

	assert.Equal(t, 1, s.QuestionIndex)
	assert.False(t, s.ShowFeedback)
	assert.Empty(t, s.SelectedAnswer)
	assert.Zero(t, s.Choice)
	assert.Equal(t, entities.Feedback{}, s.Feedback)
}

func TestStaleActionsAreRejected(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Basics")
	s = mustApply(t, m, s, Submit(s.Run, 0), Next(s.Run, 0))

	tests := []Action{
		Submit(s.Run, 0),
		ChooseOption(s.Run, 0, 1),
		Next(s.Run, 0),
		Submit(s.Run-1, 1),
		ViewScore(s.Run+1, 1),
	}
	for _, a := range tests {
		next, err := m.Apply(s, a)
		assert.ErrorIs(t, err, ErrStaleAction, a.Kind.String())
		assert.Equal(t, s, next)
	}
}

func TestViewScoreOnlyOnLastQuestion(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Basics")
	s = mustApply(t, m, s, Submit(s.Run, 0))

	_, err := m.Apply(s, ViewScore(s.Run, 0))
	require.ErrorIs(t, err, ErrNotLastQuestion)

	for i := 0; i < 4; i++ {
		s = mustApply(t, m, s, Next(s.Run, i), Submit(s.Run, i+1))
	}
	require.True(t, s.IsLastQuestion())

	_, err = m.Apply(s, Next(s.Run, 4))
	require.ErrorIs(t, err, ErrLastQuestion)

	s = mustApply(t, m, s, ViewScore(s.Run, 4))
	assert.Equal(t, entities.PageScore, s.Page)
}

func TestFullRunScoreWithinBounds(t *testing.T) {
	m := NewQuizMachine(testBank(), NewSeededShuffler(99))
	s := quizSession(t, m, "Basics")

	// Answer every question correctly except the second one.
	for i := 0; i < s.Total(); i++ {
		q, ok := s.CurrentQuestion()
		require.True(t, ok)

		pick := indexOf(q.Options, q.Answer)
		if i == 1 {
			pick = (pick + 1) % len(q.Options)
		}

		s = mustApply(t, m, s, ChooseOption(s.Run, i, pick), Submit(s.Run, i))
		if s.IsLastQuestion() {
			s = mustApply(t, m, s, ViewScore(s.Run, i))
		} else {
			s = mustApply(t, m, s, Next(s.Run, i))
		}
	}

	assert.Equal(t, entities.PageScore, s.Page)
	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 4, s.Score)
	assert.GreaterOrEqual(t, s.Score, 0)
	assert.LessOrEqual(t, s.Score, s.Total())
}

func TestRestart(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Single")
	s = mustApply(t, m, s, ChooseOption(s.Run, 0, 1), Submit(s.Run, 0), ViewScore(s.Run, 0))
	require.Equal(t, 1, s.Score)

	s = mustApply(t, m, s, Restart())

	assert.Equal(t, entities.PageHome, s.Page)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.QuestionIndex)
	assert.False(t, s.ShowFeedback)
	assert.Empty(t, s.SelectedAnswer)
	assert.Empty(t, s.SelectedCategory)
	assert.Empty(t, s.Questions)
	assert.Equal(t, "Ada", s.PlayerName)

	// The kept name is enough to leave the home page again.
	s = mustApply(t, m, s, StartHome())
	assert.Equal(t, entities.PageCategorySelection, s.Page)
}

func TestRestartMidQuizInvalidatesOldButtons(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Basics")
	oldRun := s.Run

	s = mustApply(t, m, s, Restart(), StartHome(), SelectCategory("Basics"), StartQuiz())
	require.Equal(t, oldRun+1, s.Run)

	_, err := m.Apply(s, Submit(oldRun, 0))
	assert.ErrorIs(t, err, ErrStaleAction)
}

func TestScorePageOnlyAcceptsRestart(t *testing.T) {
	m := NewQuizMachine(testBank(), keepOrder{})
	s := quizSession(t, m, "Single")
	s = mustApply(t, m, s, Submit(s.Run, 0), ViewScore(s.Run, 0))

	for _, a := range []Action{StartHome(), StartQuiz(), Submit(s.Run, 0), EnterName("Bob")} {
		_, err := m.Apply(s, a)
		assert.ErrorIs(t, err, ErrActionNotAllowed, a.Kind.String())
	}

	next, err := m.Apply(s, Show())
	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}
