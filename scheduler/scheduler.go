package scheduler

import (
	"context"
	"signalalert/services"
	"signalalert/store"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartScheduler pushes undelivered notifications on every tick of schedule, a
// cron expression with a seconds field.
func StartScheduler(schedule string, inbox *store.NotificationStore, sender services.Sender, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(schedule, func() {
		sent := services.DispatchPending(context.Background(), inbox, sender, log)
		if sent > 0 {
			log.Info("notifications pushed", zap.Int("count", sent))
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("scheduler started", zap.String("schedule", schedule))
	return c, nil
}
