package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// OrderPurger deletes finished orders older than a retention.
type OrderPurger interface {
	PurgeFinishedOrders(ctx context.Context, olderThan time.Duration) (int, error)
}

// PurgeFinishedOrdersJob periodically removes delivered and cancelled orders.
type PurgeFinishedOrdersJob struct {
	purger    OrderPurger
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPurgeFinishedOrdersJob creates the purge job.
// Orders whose last update is older than retention are removed on every tick of schedule.
func NewPurgeFinishedOrdersJob(
	purger OrderPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *PurgeFinishedOrdersJob {
	return &PurgeFinishedOrdersJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "purge_finished_orders_job"),
	}
}

// Start registers the purge on its schedule and starts the scheduler.
func (j *PurgeFinishedOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge finished orders job started",
		"schedule", j.schedule, "retention", j.retention)
	return nil
}

// Run executes one purge.
func (j *PurgeFinishedOrdersJob) Run() {
	ctx := context.Background()

	purged, err := j.purger.PurgeFinishedOrders(ctx, j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Purge finished orders job failed", "error", err, "purged", purged)
		return
	}

	if purged > 0 {
		j.logger.InfoContext(ctx, "Finished orders purged", "purged", purged)
	}
}

// Stop stops the purge job and waits for a running purge to return.
func (j *PurgeFinishedOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Purge finished orders job stopped")
}
