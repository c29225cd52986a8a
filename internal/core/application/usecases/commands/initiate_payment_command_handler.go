package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgdmdev/mgpay-test/internal/core/ports"
)

// ErrPaymentInitiationFailed wraps provider-side failures. The order stays
// pending when initiation fails; no retry is attempted.
var ErrPaymentInitiationFailed = errors.New("payment initiation failed")

// InitiatePaymentResult carries the provider's answer back to the transport
// layer: the URL to redirect the customer to and the transaction reference.
type InitiatePaymentResult struct {
	AuthorizationURL string
	Reference        string
}

// InitiatePaymentCommandHandler asks the payment provider for an
// authorization URL and records the issued reference on the order,
// advancing it from pending to payment_initiated.
type InitiatePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	provider   ports.PaymentProvider
	publisher  ports.EventPublisher
}

// NewInitiatePaymentCommandHandler creates a handler for payment initiation.
func NewInitiatePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	provider ports.PaymentProvider,
	publisher ports.EventPublisher,
) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		publisher:  publisher,
	}
}

// Handle processes the payment initiation command.
//
// The provider call is a single attempt bounded by the context deadline.
// On provider failure the transaction is rolled back and the order remains
// pending; the failure is wrapped in ErrPaymentInitiationFailed for the
// caller to classify.
func (h *InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return InitiatePaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	email := cmd.Email()
	if email == "" {
		email = ord.Email()
	}

	initiation, err := h.provider.InitiatePayment(ctx, ports.PaymentInitiationRequest{
		OrderID:  ord.ID(),
		Amount:   ord.Amount(),
		Customer: ord.Customer(),
		Email:    email,
	})
	if err != nil {
		return InitiatePaymentResult{}, fmt.Errorf("%w: %w", ErrPaymentInitiationFailed, err)
	}

	if err = ord.InitiatePayment(initiation.Reference); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	// Best effort: a failed publish must not fail the initiation.
	_ = h.publisher.PublishOrderChanged(ctx, ord)

	return InitiatePaymentResult{
		AuthorizationURL: initiation.AuthorizationURL,
		Reference:        initiation.Reference,
	}, nil
}
