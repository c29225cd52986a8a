package commands

import (
	"errors"
	"strings"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"
	"github.com/mgdmdev/mgpay-test/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a validated request to create a new payment
// order. Amount and customer validity are established here, before any state
// change happens.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	amount   kernel.Money
	customer string
	email    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new payment order.
// Validates that the order id and amount are constructed value objects and
// that the customer name is non-empty after trimming. Email is optional and
// only used for provider initiation later.
func NewCreateOrderCommand(orderID kernel.UUID, amount kernel.Money, customer, email string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		email: strings.TrimSpace(email),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setAmount(amount),
		orderCommand.setCustomer(customer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the payment amount.
func (c CreateOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Customer returns the trimmed customer display name.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// Email returns the optional customer email.
func (c CreateOrderCommand) Email() string {
	return c.email
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	trimmed := strings.TrimSpace(customer)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	c.customer = trimmed
	return nil
}
