package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalePaymentReportJob periodically reports orders stuck in a non-final
// status. It never transitions orders itself: a missing webhook is an
// observation for operators, not proof the payment failed.
type StalePaymentReportJob struct {
	handler   queries.GetStalePaymentsQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalePaymentReportJob creates the reporting job. Orders idle longer
// than threshold count as stale.
func NewStalePaymentReportJob(
	handler queries.GetStalePaymentsQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StalePaymentReportJob {
	return &StalePaymentReportJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_payment_report_job"),
	}
}

// Start schedules the report to run every five minutes.
func (j *StalePaymentReportJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalePaymentsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale payment report job misconfigured", "error", queryErr)
			return
		}

		stale, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale payment report job failed", "error", handleErr)
			return
		}

		if len(stale) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Found orders without payment resolution",
			"count", len(stale), "threshold", j.threshold.String())
		for _, view := range stale {
			j.logger.WarnContext(ctx, "Stale payment",
				"order_id", view.ID.String(),
				"status", view.Status,
				"updated_at", view.UpdatedAt)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale payment report job started (running every 5 minutes)")
	return nil
}

// Stop stops the reporting job.
func (j *StalePaymentReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale payment report job stopped")
}
