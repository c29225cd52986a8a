package ports

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
)

// PaymentInitiationRequest carries the order details the provider needs to
// create a payment attempt.
type PaymentInitiationRequest struct {
	OrderID  kernel.UUID
	Amount   kernel.Money
	Customer string
	Email    string
}

// PaymentInitiation is the provider's answer to a successful initiation:
// where to send the customer and the reference identifying the attempt.
type PaymentInitiation struct {
	AuthorizationURL string
	Reference        string
}

// PaymentProvider initiates payment attempts with an external provider.
// Implementations must bound the call with the context deadline and make a
// single attempt; retrying is the caller's decision, and the caller here
// deliberately does not retry.
type PaymentProvider interface {
	InitiatePayment(ctx context.Context, req PaymentInitiationRequest) (PaymentInitiation, error)
}
