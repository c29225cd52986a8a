package ports

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"
)

// EventPublisher announces order status changes to interested consumers.
// Publishing is best effort: a failed publish must not fail the business
// operation that triggered it.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
