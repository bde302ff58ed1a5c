// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CancelledOrderPurgeJob deletes cancelled orders whose cancellation is older than
// the configured retention. It runs on a six-field cron schedule (seconds first),
// nightly at 03:00 by default, and deletes in batches until nothing is left.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, "0 0 3 * * *", 30*24*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A retention of zero leaves the purge job out entirely.
package jobs
