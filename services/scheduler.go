// services/scheduler.go
package services

import (
	"context"
	"time"

	"pawcare-backend/logger"
	"pawcare-backend/session"

	cron "github.com/robfig/cron/v3"
)

const sessionSweepSchedule = "@every 15m"

// StartSessionSweeper purges expired sessions on a fixed schedule. Stop the
// returned cron on shutdown.
func StartSessionSweeper(store session.Store, log logger.Logger) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(sessionSweepSchedule, func() {
		SweepSessions(context.Background(), store, log)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("session sweeper started", logger.Fields{"schedule": sessionSweepSchedule})
	return c, nil
}

func SweepSessions(ctx context.Context, store session.Store, log logger.Logger) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	n, err := store.DeleteExpired(ctx)
	if err != nil {
		log.Error("purge expired sessions", logger.Fields{"error": err})
		return
	}
	if n > 0 {
		log.Info("expired sessions purged", logger.Fields{"count": n})
	}
}
