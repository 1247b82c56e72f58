// Package jobs provides scheduled background tasks for the order lifecycle
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. ReconciliationSweepJob - Runs every minute to surface unresolved
// reconciliation flags left behind by ambiguous gateway calls
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(openReconciliationsHandler, logger)
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
// The sweep job only reads: a failed sweep is logged and retried on the next
// tick. Unresolved flags are never auto-resolved; resolving one requires an
// operator to confirm the remote gateway state first.
package jobs
