package service

import (
	"context"
	"time"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// CategorySource is a place the question bank can be read from.
type CategorySource interface {
	LoadCategories(ctx context.Context) ([]entities.Category, error)
}

// Shuffler reorders a slice of length n in place by calling swap.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// IdleEvictor drops the per-chat entries that have not been touched since cutoff.
type IdleEvictor interface {
	EvictIdle(cutoff time.Time) []int64
}
