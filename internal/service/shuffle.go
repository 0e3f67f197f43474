package service

import (
	"math/rand/v2"
	"sync"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// RandomShuffler is a Shuffler backed by math/rand/v2. Its Shuffle is a
// Fisher-Yates pass, so every permutation is equally likely.
type RandomShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomShuffler returns a shuffler seeded from the runtime's random source.
func NewRandomShuffler() *RandomShuffler {
	return &RandomShuffler{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededShuffler returns a shuffler with a fixed seed, for reproducible runs.
func NewSeededShuffler(seed uint64) *RandomShuffler {
	return &RandomShuffler{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (s *RandomShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(n, swap)
}

// shuffleQuestions copies questions, shuffles their order and then, independently,
// each question's option order. The input is left untouched.
func shuffleQuestions(shuffler Shuffler, questions []entities.Question) []entities.Question {
	out := make([]entities.Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}

	shuffler.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	for i := range out {
		opts := out[i].Options
		shuffler.Shuffle(len(opts), func(i, j int) {
			opts[i], opts[j] = opts[j], opts[i]
		})
	}

	return out
}
