package jobs

import (
	"context"
	"log/slog"

	"tendering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeadlineSweepJob closes tenders whose offer deadline has passed.
// Runs every ten seconds so bidding windows end close to their deadline
// even when nobody calls the close endpoint.
type DeadlineSweepJob struct {
	handler commands.SweepDeadlinesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeadlineSweepJob creates a new job for closing overdue tenders.
// Uses SweepDeadlinesCommandHandler to close each overdue tender in its own
// transaction.
func NewDeadlineSweepJob(handler commands.SweepDeadlinesCommandHandler, logger *slog.Logger) *DeadlineSweepJob {
	return &DeadlineSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "deadline_sweep_job"),
	}
}

// Start begins the deadline sweep job to run every ten seconds.
func (j *DeadlineSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepDeadlinesCommand()

		closed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Deadline sweep failed", "error", err)
			return
		}
		if closed > 0 {
			j.logger.InfoContext(ctx, "Closed overdue tenders", "count", closed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline sweep job started (running every 10 seconds)")
	return nil
}

// Stop stops the deadline sweep job.
func (j *DeadlineSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline sweep job stopped")
}
