// Package jobs provides scheduled background tasks for the pancake service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with seconds.
//
// # Available Jobs
//
// 1. PurgeFinishedOrdersJob - Deletes delivered and cancelled orders older than the retention
// 2. ActiveOrdersReportJob - Logs how many active orders sit in each status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(coordinator, coordinator, jobs.Schedules{
//		Purge:          "0 */5 * * * *",
//		PurgeRetention: time.Hour,
//		Report:         "*/30 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed run is logged and the job keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
