package http

import (
	"net/http"
	"strings"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/commands"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Webhook events that mean a payment succeeded. Anything else is
// acknowledged and ignored.
var successEvents = map[string]bool{
	"charge.success":     true,
	"payment.successful": true,
}

// ReceiveWebhook handles POST /webhook - payment provider notifications.
//
// The endpoint always acknowledges with 200 so the provider does not retry
// events we cannot act on; Processed tells callers whether an order
// actually changed. The only non-200 answer is 401 when strict
// authentication is enabled and the bearer token is missing or wrong.
func (s *Server) ReceiveWebhook(ctx echo.Context) error {
	if err := s.authenticateWebhook(ctx); err != nil {
		return err
	}

	var event servers.WebhookEvent
	if err := ctx.Bind(&event); err != nil {
		s.logger.Warn("webhook payload is not valid json")
		return ack(ctx, false)
	}

	if !successEvents[event.Event] {
		s.logger.Info("ignoring webhook event", "event", event.Event)
		return ack(ctx, false)
	}

	if event.Data == nil || event.Data.Metadata == nil || event.Data.Metadata.OrderId == nil {
		s.logger.Warn("webhook event carries no order id", "event", event.Event)
		return ack(ctx, false)
	}

	orderID, err := kernel.UUIDFromString(*event.Data.Metadata.OrderId)
	if err != nil {
		s.logger.Warn("webhook order id is not a valid uuid",
			"order_id", *event.Data.Metadata.OrderId)
		return ack(ctx, false)
	}

	reference := ""
	if event.Data.Reference != nil {
		reference = *event.Data.Reference
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, reference)
	if err != nil {
		s.logger.Warn("webhook event rejected", "order_id", orderID.String(), "error", err)
		return ack(ctx, false)
	}

	if err = s.completeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.Error("failed to complete order from webhook",
			"order_id", orderID.String(), "event", event.Event, "error", err)
		return ack(ctx, false)
	}

	s.logger.Info("order completed from webhook",
		"order_id", orderID.String(), "event", event.Event)
	return ack(ctx, true)
}

// authenticateWebhook verifies the bearer token. In strict mode a missing
// or mismatched token fails the request; otherwise it is logged and the
// event proceeds.
func (s *Server) authenticateWebhook(ctx echo.Context) error {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	authenticated := ok && token == s.webhook.ServiceToken && s.webhook.ServiceToken != ""

	if authenticated {
		return nil
	}

	if s.webhook.StrictAuth {
		s.logger.Warn("rejected webhook with invalid bearer token")
		return jsonError(ctx, http.StatusUnauthorized, "Invalid webhook token")
	}

	s.logger.Warn("webhook bearer token mismatch, processing anyway (strict auth disabled)")
	return nil
}

func ack(ctx echo.Context, processed bool) error {
	return ctx.JSON(http.StatusOK, servers.WebhookAck{
		Received:  true,
		Processed: &processed,
	})
}
