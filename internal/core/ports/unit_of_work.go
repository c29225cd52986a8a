package ports

import "context"

// UnitOfWork coordinates a database transaction around repository operations.
// Each business operation should use a fresh instance; instances are not
// safe for concurrent use.
type UnitOfWork interface {
	// Begin starts the transaction. Calling Begin twice is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes all changes made within the transaction.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Safe to call after Commit,
	// which makes it usable in a defer.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the transaction.
	OrderRepository() OrderRepository
}
