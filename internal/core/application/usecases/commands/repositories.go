// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated value object handled by a dedicated handler that manages its
// own transaction.
package commands

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	// Handlers request a fresh unit of work per command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
