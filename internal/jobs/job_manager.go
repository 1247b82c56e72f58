package jobs

import (
	"fmt"
	"log/slog"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationSweepJob *ReconciliationSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	openReconciliationsHandler queries.GetOpenReconciliationsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationSweepJob: NewReconciliationSweepJob(openReconciliationsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start reconciliation sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationSweepJob.Stop()
}
