package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionCleaner evicts the in-memory state of chats that have been idle
// longer than ttl.
type SessionCleaner struct {
	sessions IdleEvictor
	pages    IdleEvictor
	schedule string
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewSessionCleaner creates a cleaner that runs on the given cron schedule.
func NewSessionCleaner(
	sessions IdleEvictor,
	pages IdleEvictor,
	schedule string,
	ttl time.Duration,
	logger *zap.Logger,
) *SessionCleaner {
	return &SessionCleaner{
		sessions: sessions,
		pages:    pages,
		schedule: schedule,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Start runs the cleanup job until ctx is done.
func (c *SessionCleaner) Start(ctx context.Context) {
	cr := cron.New(cron.WithLocation(time.UTC))

	_, err := cr.AddFunc(c.schedule, func() {
		c.Cleanup()
	})
	if err != nil {
		c.logger.Error("failed to add session cleanup job",
			zap.String("schedule", c.schedule),
			zap.Error(err),
		)
		return
	}

	cr.Start()
	c.logger.Info("session cleaner started",
		zap.String("schedule", c.schedule),
		zap.Duration("ttl", c.ttl),
	)

	<-ctx.Done()

	<-cr.Stop().Done()
	c.logger.Info("session cleaner stopped")
}

// Cleanup evicts idle chats and returns how many sessions were removed.
// Each storage checks idleness under its own lock, so a chat that becomes
// active during the sweep keeps its state.
func (c *SessionCleaner) Cleanup() int {
	cutoff := c.now().Add(-c.ttl)

	sessions := c.sessions.EvictIdle(cutoff)
	pages := c.pages.EvictIdle(cutoff)

	if len(sessions) > 0 || len(pages) > 0 {
		c.logger.Info("idle chats evicted",
			zap.Int("sessions", len(sessions)),
			zap.Int("pages", len(pages)),
		)
	}

	return len(sessions)
}
