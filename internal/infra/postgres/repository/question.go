package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/infra/postgres"
)

// QuestionRepository reads the question bank from the quiz_questions table.
type QuestionRepository struct {
	db postgres.DBTX
}

// NewQuestionRepository creates a new QuestionRepository with the provided database handle.
func NewQuestionRepository(db postgres.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

type questionRow struct {
	Category    string   `db:"category"`
	Question    string   `db:"question"`
	Options     []string `db:"options"`
	Answer      string   `db:"answer"`
	Explanation *string  `db:"explanation"`
}

// LoadCategories returns every category with its questions. Categories are
// ordered by their first appearance (lowest id), questions by position.
// Rows are returned as stored; validation is left to the caller.
func (r *QuestionRepository) LoadCategories(ctx context.Context) ([]entities.Category, error) {
	query := `
		SELECT q.category, q.question, q.options, q.answer, q.explanation
		FROM quiz_questions q
		JOIN (
			SELECT category, MIN(id) AS first_id
			FROM quiz_questions
			GROUP BY category
		) c ON c.category = q.category
		ORDER BY c.first_id, q.position, q.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query quiz questions: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[questionRow])
	if err != nil {
		return nil, fmt.Errorf("scan quiz questions: %w", err)
	}

	var categories []entities.Category
	for _, rec := range records {
		q := entities.Question{
			Text:    rec.Question,
			Options: rec.Options,
			Answer:  rec.Answer,
		}
		if rec.Explanation != nil {
			q.Explanation = *rec.Explanation
		}

		last := len(categories) - 1
		if last < 0 || categories[last].Name != rec.Category {
			categories = append(categories, entities.Category{Name: rec.Category})
			last++
		}
		categories[last].Questions = append(categories[last].Questions, q)
	}

	return categories, nil
}
