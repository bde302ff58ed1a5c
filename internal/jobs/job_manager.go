package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	purgeJob *CancelledOrderPurgeJob
}

// NewJobManager wires the background jobs. A zero retention disables the
// cancelled order purge.
func NewJobManager(
	purgeHandler purgeHandler,
	purgeSchedule string,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if retention > 0 {
		jm.purgeJob = NewCancelledOrderPurgeJob(purgeHandler, purgeSchedule, retention, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.purgeJob == nil {
		return nil
	}
	if err := jm.purgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start cancelled order purge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.purgeJob != nil {
		jm.purgeJob.Stop()
	}
}
