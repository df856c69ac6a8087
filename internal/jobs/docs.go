// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Currently there is a single job:
//
// AbandonedOrderJob - runs every minute and cancels pending, unpaid orders
// older than the configured cutoff, returning their reservations to the
// available pool.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(releaseHandler, maxAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
