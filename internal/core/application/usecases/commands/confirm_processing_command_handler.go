package commands

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/core/ports"
)

// ConfirmProcessingCommandHandler advances an order from payment_initiated
// to processing when the provider begins settlement.
type ConfirmProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewConfirmProcessingCommandHandler creates a handler for settlement confirmation.
func NewConfirmProcessingCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ConfirmProcessingCommandHandler {
	return ConfirmProcessingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the confirmation command. Unknown orders fail with an
// ObjectNotFoundError and mutate nothing; illegal transitions (for example
// confirming a pending order) fail validation inside the aggregate.
func (h *ConfirmProcessingCommandHandler) Handle(ctx context.Context, cmd ConfirmProcessingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.ConfirmProcessing(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishOrderChanged(ctx, ord)

	return nil
}
