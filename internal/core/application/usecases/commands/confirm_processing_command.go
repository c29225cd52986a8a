package commands

import (
	"errors"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/pkg/guard"
)

var (
	ErrConfirmProcessingCommandIsNotConstructed = errors.New(
		"ConfirmProcessingCommand must be created via NewConfirmProcessingCommand constructor",
	)
)

// ConfirmProcessingCommand represents the settlement confirmation that moves
// an order from payment_initiated to processing.
type ConfirmProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmProcessingCommand creates a command to confirm settlement has begun.
func NewConfirmProcessingCommand(orderID kernel.UUID) (ConfirmProcessingCommand, error) {
	command := ConfirmProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ConfirmProcessingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmProcessingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmProcessingCommandIsNotConstructed)
}

// OrderID returns the order to confirm.
func (c ConfirmProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmProcessingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
