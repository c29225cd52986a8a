package ports

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Callers receive reconstructed snapshots; the store remains the single
// owner of the persisted records.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// version it was loaded at. Fails with an ObjectNotFoundError for
	// unknown ids and a VersionConflictError when another writer raced
	// the update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
