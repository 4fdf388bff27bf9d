// Package jobs provides scheduled background tasks for the tendering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations required for cascade progression.
//
// # Available Jobs
//
// 1. DeadlineSweepJob - Runs every 10 seconds to close tenders whose offer deadline has passed
// 2. EscalationJob - Runs every 30 seconds to reconcile cascades whose escalation was missed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepDeadlinesHandler, sweepEscalationsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The deadline sweep skips tenders another writer closed first
// - The escalation sweep re-checks every candidate under the parent row lock,
//   so it never double-opens a tier
// - Failed job starts will stop any already running jobs
package jobs
