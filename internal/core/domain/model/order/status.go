package order

import (
	"fmt"

	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment order.
// It implements a state machine with defined transitions so orders only
// advance along the payment workflow:
//
//	Pending ──> PaymentInitiated ──> Processing ──> Completed
//	                   │                              ▲
//	                   └──────────────────────────────┘
//	           (webhook success accepted before settlement confirmation)
//
// Status is a value object that validates state transitions and provides
// the string representations used for persistence and API responses.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation, before any
	// payment attempt has been made.
	Pending

	// PaymentInitiated indicates the payment provider issued an
	// authorization URL and transaction reference for the order.
	PaymentInitiated

	// Processing indicates the provider has begun settling the payment.
	Processing

	// Completed indicates the provider reported a successful payment.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns the persisted string form of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		PaymentInitiated: "payment_initiated",
		Processing:       "processing",
		Completed:        "completed",
	}
}

// getValidStatusStrings returns only the statuses an order may legitimately hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "pending",
		PaymentInitiated: "payment_initiated",
		Processing:       "processing",
		Completed:        "completed",
	}
}

// StatusFromString parses a persisted or external status string.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, PaymentInitiated, Processing, and Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// InitiatePayment transitions the status to PaymentInitiated.
//
// Valid transitions:
//   - Pending -> PaymentInitiated (provider issued a reference)
//
// Any other source status fails: a second initiation attempt or an
// initiation after completion must not move the order backward.
func (s Status) InitiatePayment() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to initiate payment from", s.String()),
		)
	}

	return PaymentInitiated, nil
}

// Process transitions the status to Processing.
//
// Valid transitions:
//   - PaymentInitiated -> Processing (provider began settlement)
func (s Status) Process() (Status, error) {
	if s != PaymentInitiated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to begin processing from", s.String()),
		)
	}

	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - PaymentInitiated -> Completed (webhook success before settlement confirmation)
//   - Processing -> Completed (webhook success after settlement began)
//
// Completing from Pending fails: a success notification for an order that
// never initiated payment indicates a provider mismatch, not progress.
func (s Status) Complete() (Status, error) {
	if s != PaymentInitiated && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete from", s.String()),
		)
	}

	return Completed, nil
}

// IsFinal reports whether the status allows no further transitions.
func (s Status) IsFinal() bool {
	return s == Completed
}
