package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the purge every night at 03:00.
const DefaultPurgeSchedule = "0 0 3 * * *"

type purgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeCancelledOrdersCommand) (int, error)
}

// CancelledOrderPurgeJob deletes cancelled orders once they are older than the
// retention period. Each run drains the backlog batch by batch.
type CancelledOrderPurgeJob struct {
	handler   purgeHandler
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewCancelledOrderPurgeJob(
	handler purgeHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *CancelledOrderPurgeJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}
	return &CancelledOrderPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		now:       func() time.Time { return time.Now().UTC() },
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "cancelled_order_purge_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *CancelledOrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Cancelled order purge failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cancelled order purge job started",
		"schedule", j.schedule,
		"retention", j.retention.String(),
	)
	return nil
}

// RunOnce purges every order cancelled before now minus the retention and
// returns how many were deleted.
func (j *CancelledOrderPurgeJob) RunOnce(ctx context.Context) (int, error) {
	cutoff := j.now().Add(-j.retention)
	cmd, err := commands.NewPurgeCancelledOrdersCommand(cutoff, commands.DefaultPurgeBatchSize)
	if err != nil {
		return 0, err
	}

	total := 0
	for {
		n, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			return total, err
		}
		total += n
		if n < cmd.BatchSize() {
			break
		}
	}

	if total > 0 {
		j.logger.InfoContext(ctx, "Purged cancelled orders", "count", total, "cancelled_before", cutoff)
	}
	return total, nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *CancelledOrderPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cancelled order purge job stopped")
}
