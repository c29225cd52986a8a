// Package jobs provides scheduled background tasks for the payment service.
//
// Jobs are cron-based via github.com/robfig/cron/v3 and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(stalePaymentsHandler, threshold, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	stalePaymentReportJob *StalePaymentReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	stalePaymentsHandler queries.GetStalePaymentsQueryHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePaymentReportJob: NewStalePaymentReportJob(stalePaymentsHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePaymentReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale payment report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePaymentReportJob.Stop()
}
