package storage

import (
	"sync"
	"time"
)

// PageMessage is the bot message that currently shows a chat's page.
type PageMessage struct {
	MessageID int
	SentAt    time.Time
}

// PageMessageStorage remembers the last page message per chat, so a new page
// can replace the keyboard of the previous one.
type PageMessageStorage struct {
	mu       sync.RWMutex
	messages map[int64]PageMessage
}

func NewPageMessageStorage() *PageMessageStorage {
	return &PageMessageStorage{
		messages: make(map[int64]PageMessage),
	}
}

func (s *PageMessageStorage) UpsertAndGetPrev(chatID int64, messageID int) (prev PageMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = PageMessage{
		MessageID: messageID,
		SentAt:    time.Now(),
	}

	return prev, hadPrev
}

// EvictIdle forgets the page messages last sent or edited before cutoff and
// returns their chat IDs.
func (s *PageMessageStorage) EvictIdle(cutoff time.Time) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []int64
	for chatID, msg := range s.messages {
		if msg.SentAt.Before(cutoff) {
			delete(s.messages, chatID)
			evicted = append(evicted, chatID)
		}
	}
	return evicted
}
