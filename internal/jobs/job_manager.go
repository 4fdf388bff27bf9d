package jobs

import (
	"fmt"
	"log/slog"

	"tendering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deadlineSweepJob *DeadlineSweepJob
	escalationJob    *EscalationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepDeadlinesHandler commands.SweepDeadlinesCommandHandler,
	sweepEscalationsHandler commands.SweepEscalationsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deadlineSweepJob: NewDeadlineSweepJob(sweepDeadlinesHandler, logger),
		escalationJob:    NewEscalationJob(sweepEscalationsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deadlineSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start deadline sweep job: %w", err)
	}

	if err := jm.escalationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deadlineSweepJob.Stop()
		return fmt.Errorf("failed to start escalation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineSweepJob.Stop()
	jm.escalationJob.Stop()
}
