package commands

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"
	"github.com/mgdmdev/mgpay-test/internal/core/ports"
)

// CompleteOrderCommandHandler marks an order completed in response to a
// successful payment notification.
//
// Replayed notifications are idempotent: an order that is already completed
// is left untouched and the command succeeds, so duplicate webhook
// deliveries cause no additional writes or events.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteOrderCommandHandler creates a handler for payment completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command. Unknown orders fail with an
// ObjectNotFoundError and mutate nothing.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	// Duplicate notification for an already settled order.
	if ord.Status() == order.Completed {
		return nil
	}

	if err = ord.Complete(cmd.Reference()); err != nil {
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
