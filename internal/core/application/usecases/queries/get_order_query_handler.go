package queries

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order view from the database.
// Uses a direct SQL query for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order view.
// Returns an ObjectNotFoundError when no order has the requested ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view, err := scanOrderView(rows)
	if err != nil {
		return OrderView{}, err
	}

	return view, nil
}
