package commands

import (
	"errors"
	"strings"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/pkg/guard"
)

var (
	ErrInitiatePaymentCommandIsNotConstructed = errors.New(
		"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
	)
)

// InitiatePaymentCommand represents a request to obtain a payment
// authorization URL from the provider for an existing pending order.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	email   string

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand creates a command to initiate payment for the
// given order. Email optionally overrides the address captured at order
// creation; the provider requires one, so the handler falls back to the
// stored address when this is empty.
func NewInitiatePaymentCommand(orderID kernel.UUID, email string) (InitiatePaymentCommand, error) {
	command := InitiatePaymentCommand{
		email: strings.TrimSpace(email),
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

// OrderID returns the order to initiate payment for.
func (c InitiatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Email returns the optional email override.
func (c InitiatePaymentCommand) Email() string {
	return c.email
}

func (c *InitiatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
