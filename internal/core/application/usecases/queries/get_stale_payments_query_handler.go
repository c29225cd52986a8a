package queries

import (
	"context"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStalePaymentsQueryHandler reads orders stuck in a non-final status.
type GetStalePaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePaymentsQueryHandler creates a handler for stale-payment queries.
func NewGetStalePaymentsQueryHandler(db *gorm.DB) GetStalePaymentsQueryHandler {
	return GetStalePaymentsQueryHandler{db: db}
}

// Handle returns views of orders still pending or payment_initiated
// whose last update is older than the query threshold. Oldest first,
// so the most neglected orders lead the report.
func (h GetStalePaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetStalePaymentsQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Threshold())
	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE status IN (?, ?)
		  AND updated_at < ?
		ORDER BY updated_at
	`, order.Pending.String(), order.PaymentInitiated.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
