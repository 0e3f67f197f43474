package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

type sessionEntry struct {
	session   entities.Session
	updatedAt time.Time
}

// SessionStorage keeps one quiz session per chat in memory.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]sessionEntry),
	}
}

// Get returns the session for chatID, or a fresh one if the chat has none yet.
func (s *SessionStorage) Get(chatID int64) entities.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[chatID]
	if !ok {
		return entities.NewSession()
	}
	return entry.session
}

// Update applies fn to the chat's session under the write lock and stores the
// result when fn succeeds. A successful update counts as chat activity.
func (s *SessionStorage) Update(chatID int64, fn func(entities.Session) (entities.Session, error)) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := entities.NewSession()
	if entry, ok := s.sessions[chatID]; ok {
		current = entry.session
	}

	next, err := fn(current)
	if err != nil {
		return current, err
	}

	s.sessions[chatID] = sessionEntry{session: next, updatedAt: time.Now()}
	return next, nil
}

// EvictIdle removes the sessions last updated before cutoff and returns their chat IDs.
func (s *SessionStorage) EvictIdle(cutoff time.Time) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []int64
	for chatID, entry := range s.sessions {
		if entry.updatedAt.Before(cutoff) {
			delete(s.sessions, chatID)
			evicted = append(evicted, chatID)
		}
	}
	return evicted
}
