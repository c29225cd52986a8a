package commands

import (
	"errors"
	"strings"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents a successful payment notification for an
// order: the webhook receiver maps recognized success events to this command.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to mark an order completed.
// Reference is the provider's transaction reference from the notification;
// it may be empty, in which case the order keeps its stored reference.
func NewCompleteOrderCommand(orderID kernel.UUID, reference string) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		reference: strings.TrimSpace(reference),
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order reported as paid.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reference returns the provider transaction reference from the notification.
func (c CompleteOrderCommand) Reference() string {
	return c.reference
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
