package order

import (
	"errors"
	"strings"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a payment order tracked from creation to completion.
// It is the aggregate root that owns the payment lifecycle.
//
// Order maintains these invariants:
//   - Has a valid unique identifier assigned once at creation
//   - Amount is strictly positive and immutable after creation
//   - Customer is a non-empty trimmed string, immutable after creation
//   - Status only advances along the transitions defined by Status
//   - updated_at is refreshed on every mutation
//
// Private fields with validated mutators ensure the aggregate cannot be put
// into an inconsistent state from outside the package.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// amount is the payment amount, fixed at creation
	amount kernel.Money

	// customer is the display name the order was created for
	customer string

	// email is the address handed to the payment provider (optional)
	email string

	// status is the current state in the payment lifecycle
	status Status

	// paymentReference is the provider-assigned transaction reference.
	// A later authoritative reference may overwrite an earlier one.
	paymentReference *string

	createdAt time.Time
	updatedAt time.Time

	// version supports optimistic concurrency in the store
	version int64

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
//
// Parameters:
//   - id: unique identifier for the order (must be a constructed UUID)
//   - amount: payment amount (must be a constructed, positive Money)
//   - customer: customer display name (must be non-empty after trimming)
//   - email: customer email passed to the provider (optional)
//
// created_at and updated_at are both set to the same instant, so a fresh
// order always has created_at == updated_at.
func NewOrder(id kernel.UUID, amount kernel.Money, customer, email string) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Pending,
		email:         strings.TrimSpace(email),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setAmount(amount),
		order.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without resetting
// timestamps or status. All fields are validated; an invalid stored status
// fails restoration rather than producing a corrupt aggregate.
func RestoreOrder(
	id kernel.UUID,
	amount kernel.Money,
	customer, email string,
	status Status,
	paymentReference *string,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        status,
		email:         strings.TrimSpace(email),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setAmount(amount),
		order.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	if paymentReference != nil {
		order.setReference(*paymentReference)
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Amount returns the payment amount.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Customer returns the customer display name.
func (o *Order) Customer() string {
	return o.customer
}

// Email returns the customer email, empty when not provided.
func (o *Order) Email() string {
	return o.email
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentReference returns the provider transaction reference.
// Returns nil when no payment has been initiated yet.
func (o *Order) PaymentReference() *string {
	if o.paymentReference == nil {
		return nil
	}
	ref := *o.paymentReference
	return &ref
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version loaded from the store.
func (o *Order) Version() int64 {
	return o.version
}

// InitiatePayment records a successful payment initiation: the order moves
// from Pending to PaymentInitiated and stores the provider's transaction
// reference.
//
// Returns an error when the reference is empty or the order is not Pending.
func (o *Order) InitiatePayment(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}

	newStatus, err := o.status.InitiatePayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.setReference(reference)
	o.touch()
	return nil
}

// ConfirmProcessing records that the provider began settling the payment:
// the order moves from PaymentInitiated to Processing. The existing
// reference is kept.
func (o *Order) ConfirmProcessing() error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete records a successful payment notification: the order moves to
// Completed from PaymentInitiated or Processing. A non-empty reference
// overwrites the stored one, since the webhook carries the authoritative
// transaction reference; an empty reference keeps the existing value.
func (o *Order) Complete(reference string) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	if strings.TrimSpace(reference) != "" {
		o.setReference(reference)
	}
	o.touch()
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setAmount validates and sets the payment amount.
func (o *Order) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.amount = amount
	return nil
}

// setCustomer validates and sets the customer name.
// The name must be non-empty after trimming whitespace.
func (o *Order) setCustomer(customer string) error {
	trimmed := strings.TrimSpace(customer)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = trimmed
	return nil
}

func (o *Order) setReference(reference string) {
	ref := strings.TrimSpace(reference)
	o.paymentReference = &ref
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
