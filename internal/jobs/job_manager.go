package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedules holds the cron expressions of the jobs.
type Schedules struct {
	Purge          string
	PurgeRetention time.Duration
	Report         string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	purgeJob  *PurgeFinishedOrdersJob
	reportJob *ActiveOrdersReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	purger OrderPurger,
	reader ActiveOrdersReader,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		purgeJob:  NewPurgeFinishedOrdersJob(purger, schedules.Purge, schedules.PurgeRetention, logger),
		reportJob: NewActiveOrdersReportJob(reader, schedules.Report, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.purgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start purge finished orders job: %w", err)
	}

	if err := jm.reportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.purgeJob.Stop()
		return fmt.Errorf("failed to start active orders report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reportJob.Stop()
	jm.purgeJob.Stop()
}
