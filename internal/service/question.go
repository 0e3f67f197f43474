package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// QuestionService holds the question bank loaded once at startup.
type QuestionService struct {
	bank *entities.QuestionBank
}

// NewQuestionService loads the bank from source. A failing source never stops
// the process: the error is logged and the service serves an empty bank.
func NewQuestionService(ctx context.Context, source CategorySource, logger *zap.Logger) *QuestionService {
	raw, err := source.LoadCategories(ctx)
	if err != nil {
		logger.Error("failed to load questions, continuing without categories", zap.Error(err))
		return &QuestionService{bank: entities.EmptyQuestionBank()}
	}

	bank := BuildQuestionBank(raw, logger)
	logger.Info("questions loaded", zap.Int("categories", bank.Len()))

	return &QuestionService{bank: bank}
}

// Bank returns the loaded bank.
func (s *QuestionService) Bank() *entities.QuestionBank {
	return s.bank
}

// Categories returns category names in source order.
func (s *QuestionService) Categories() []string {
	return s.bank.Names()
}

// BuildQuestionBank keeps only playable questions and drops categories that
// end up empty or have a blank name. Everything it skips is logged.
func BuildQuestionBank(raw []entities.Category, logger *zap.Logger) *entities.QuestionBank {
	categories := make([]entities.Category, 0, len(raw))

	for _, rc := range raw {
		// A blank name is indistinguishable from the placeholder entry.
		if strings.TrimSpace(rc.Name) == "" {
			logger.Warn("skipping category without a name",
				zap.Int("questions", len(rc.Questions)),
			)
			continue
		}

		valid := make([]entities.Question, 0, len(rc.Questions))
		for i, q := range rc.Questions {
			if err := q.Validate(); err != nil {
				logger.Warn("skipping invalid question",
					zap.String("category", rc.Name),
					zap.Int("position", i),
					zap.Error(err),
				)
				continue
			}
			valid = append(valid, q)
		}

		if len(valid) == 0 {
			logger.Warn("skipping category without valid questions",
				zap.String("category", rc.Name),
			)
			continue
		}

		categories = append(categories, entities.Category{
			Name:      rc.Name,
			Questions: valid,
		})
	}

	return entities.NewQuestionBank(categories)
}
