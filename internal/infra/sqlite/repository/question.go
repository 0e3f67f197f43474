package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// QuestionRepository reads the question bank from a SQLite quiz_questions table.
type QuestionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewQuestionRepository(db *sql.DB, logger *zap.Logger) *QuestionRepository {
	return &QuestionRepository{
		db:     db,
		logger: logger,
	}
}

// LoadCategories returns every category with its questions, in the same order
// as the postgres source: categories by first id, questions by position.
// A row whose options are not a JSON string array is logged and skipped.
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

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query quiz questions: %w", err)
	}
	defer rows.Close()

	var categories []entities.Category
	for rows.Next() {
		var (
			category    string
			q           entities.Question
			options     string
			explanation sql.NullString
		)
		if err := rows.Scan(&category, &q.Text, &options, &q.Answer, &explanation); err != nil {
			return nil, fmt.Errorf("scan quiz question: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			r.logger.Warn("skipping question with malformed options",
				zap.String("category", category),
				zap.String("question", q.Text),
				zap.Error(err),
			)
			continue
		}
		q.Explanation = explanation.String

		last := len(categories) - 1
		if last < 0 || categories[last].Name != category {
			categories = append(categories, entities.Category{Name: category})
			last++
		}
		categories[last].Questions = append(categories[last].Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz questions: %w", err)
	}

	return categories, nil
}
