package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyQuestionText = errors.New("question text is empty")
	ErrTooFewOptions     = errors.New("question needs at least two options")
	ErrDuplicateOption   = errors.New("question has duplicate options")
	ErrAnswerNotInOption = errors.New("answer is not one of the options")
)

// Question is a single multiple-choice question. It is never mutated after load;
// shuffling works on copies.
type Question struct {
	Text        string   `json:"question"`    // question shown to the player
	Options     []string `json:"options"`     // answer choices in display order
	Answer      string   `json:"answer"`      // must equal one of Options
	Explanation string   `json:"explanation"` // optional, shown after submit
}

// Validate checks the invariants a question must hold to be playable.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuestionText
	}

	if len(q.Options) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewOptions, len(q.Options))
	}

	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if _, ok := seen[opt]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateOption, opt)
		}
		seen[opt] = struct{}{}
	}

	if _, ok := seen[q.Answer]; !ok {
		return fmt.Errorf("%w: %q", ErrAnswerNotInOption, q.Answer)
	}

	return nil
}

// IsCorrect reports whether option is the right answer. Comparison is exact:
// no case folding and no trimming.
func (q Question) IsCorrect(option string) bool {
	return option == q.Answer
}

// HasExplanation reports whether there is a non-blank explanation to show.
func (q Question) HasExplanation() bool {
	return strings.TrimSpace(q.Explanation) != ""
}

// Clone returns a deep copy so the options slice can be reordered safely.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	return c
}

// Category is a named, ordered group of questions.
type Category struct {
	Name      string
	Questions []Question
}
