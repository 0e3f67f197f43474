package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var ErrNotAnObject = errors.New("question source must be a JSON object keyed by category")

// QuestionRepository reads the question bank from a JSON file.
type QuestionRepository struct {
	path   string
	logger *zap.Logger
}

// NewQuestionRepository creates a repository for the file at path.
func NewQuestionRepository(path string, logger *zap.Logger) *QuestionRepository {
	return &QuestionRepository{
		path:   path,
		logger: logger,
	}
}

// LoadCategories reads the file and returns its categories in file order.
// Questions are returned as written; validation is left to the caller.
func (r *QuestionRepository) LoadCategories(_ context.Context) ([]entities.Category, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	categories, err := r.decodeCategories(data)
	if err != nil {
		return nil, fmt.Errorf("decode questions file %s: %w", r.path, err)
	}

	r.logger.Debug("questions file decoded",
		zap.String("path", r.path),
		zap.Int("categories", len(categories)),
	)

	return categories, nil
}

// decodeCategories walks the top-level object token by token so that the
// category order of the file survives (a Go map would lose it). An entry that
// does not decode as a question is logged and skipped.
func (r *QuestionRepository) decodeCategories(data []byte) ([]entities.Category, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotAnObject
	}

	var categories []entities.Category
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, ErrNotAnObject
		}

		var entries []json.RawMessage
		if err = dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}

		questions := make([]entities.Question, 0, len(entries))
		for i, entry := range entries {
			var q entities.Question
			if err := json.Unmarshal(entry, &q); err != nil {
				r.logger.Warn("skipping malformed question",
					zap.String("category", name),
					zap.Int("position", i),
					zap.Error(err),
				)
				continue
			}
			questions = append(questions, q)
		}

		categories = append(categories, entities.Category{Name: name, Questions: questions})
	}

	if _, err = dec.Token(); err != nil {
		return nil, err
	}

	return categories, nil
}
