package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestQuestionRepositoryLoadCategories(t *testing.T) {
	path := writeFile(t, `{
		"Zeta": [
			{"question": "z1", "options": ["a", "b"], "answer": "a", "explanation": "because"}
		],
		"Alpha": [
			{"question": "a1", "options": ["x", "y", "z"], "answer": "z"},
			{"question": "a2", "options": ["1", "2"], "answer": "2"}
		]
	}`)

	repo := NewQuestionRepository(path, zaptest.NewLogger(t))
	categories, err := repo.LoadCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Zeta", categories[0].Name)
	assert.Equal(t, "Alpha", categories[1].Name)

	assert.Equal(t, entities.Question{
		Text:        "z1",
		Options:     []string{"a", "b"},
		Answer:      "a",
		Explanation: "because",
	}, categories[0].Questions[0])

	require.Len(t, categories[1].Questions, 2)
	assert.Equal(t, "a2", categories[1].Questions[1].Text)
	assert.Empty(t, categories[1].Questions[0].Explanation)
}

func TestQuestionRepositorySkipsMalformedEntries(t *testing.T) {
	path := writeFile(t, `{
		"Good": [
			{"question": "g1", "options": ["a", "b"], "answer": "a"}
		],
		"Mixed": [
			{"question": "m1", "options": "A,B", "answer": "A"},
			{"question": "m2", "options": ["c", "d"], "answer": "d"},
			42
		]
	}`)

	repo := NewQuestionRepository(path, zaptest.NewLogger(t))
	categories, err := repo.LoadCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Good", categories[0].Name)
	require.Len(t, categories[0].Questions, 1)

	assert.Equal(t, "Mixed", categories[1].Name)
	assert.Equal(t, []entities.Question{
		{Text: "m2", Options: []string{"c", "d"}, Answer: "d"},
	}, categories[1].Questions)
}

func TestQuestionRepositoryLoadCategoriesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed json", content: `{"Basics": [`},
		{name: "array at top level", content: `[]`, wantErr: ErrNotAnObject},
		{name: "category is not a list", content: `{"Basics": {"question": "q"}}`},
		{name: "empty file", content: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewQuestionRepository(writeFile(t, tt.content), zaptest.NewLogger(t))

			_, err := repo.LoadCategories(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestQuestionRepositoryMissingFile(t *testing.T) {
	repo := NewQuestionRepository(filepath.Join(t.TempDir(), "nope.json"), zaptest.NewLogger(t))

	_, err := repo.LoadCategories(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestQuestionRepositoryEmptyObject(t *testing.T) {
	repo := NewQuestionRepository(writeFile(t, `{}`), zaptest.NewLogger(t))

	categories, err := repo.LoadCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestBundledQuestionFile(t *testing.T) {
	repo := NewQuestionRepository(filepath.Join("..", "..", "assets", "data", "quiz_questions.json"), zaptest.NewLogger(t))

	categories, err := repo.LoadCategories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	for _, c := range categories {
		for _, q := range c.Questions {
			assert.NoError(t, q.Validate(), "%s: %s", c.Name, q.Text)
		}
	}
}
