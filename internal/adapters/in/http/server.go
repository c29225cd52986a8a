// Package http implements the inbound HTTP adapter. It translates the
// generated ServerInterface into application commands and queries and maps
// domain errors onto HTTP status codes.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/commands"
	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/queries"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"
	"github.com/mgdmdev/mgpay-test/internal/generated/servers"
	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler interfaces let tests substitute the application layer.
type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	initiatePaymentHandler interface {
		Handle(ctx context.Context, cmd commands.InitiatePaymentCommand) (commands.InitiatePaymentResult, error)
	}

	confirmProcessingHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmProcessingCommand) error
	}

	completeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}

	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}

	listOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
)

// WebhookConfig controls webhook authentication.
type WebhookConfig struct {
	// ServiceToken is the bearer token the provider must present.
	ServiceToken string

	// StrictAuth rejects unauthenticated webhooks with 401. When false the
	// mismatch is logged and the event is still processed.
	StrictAuth bool
}

// Server implements the generated ServerInterface, wiring HTTP requests to
// command and query handlers.
type Server struct {
	createOrder       createOrderHandler
	initiatePayment   initiatePaymentHandler
	confirmProcessing confirmProcessingHandler
	completeOrder     completeOrderHandler
	getOrder          getOrderHandler
	listOrders        listOrdersHandler

	webhook WebhookConfig
	logger  *slog.Logger
}

// NewServer creates the HTTP server with its application dependencies.
func NewServer(
	createOrder createOrderHandler,
	initiatePayment initiatePaymentHandler,
	confirmProcessing confirmProcessingHandler,
	completeOrder completeOrderHandler,
	getOrder getOrderHandler,
	listOrders listOrdersHandler,
	webhook WebhookConfig,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrder:       createOrder,
		initiatePayment:   initiatePayment,
		confirmProcessing: confirmProcessing,
		completeOrder:     completeOrder,
		getOrder:          getOrder,
		listOrders:        listOrders,
		webhook:           webhook,
		logger:            logger,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.MoneyFromString(newOrder.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	email := ""
	if newOrder.Email != nil {
		email = *newOrder.Email
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), amount, newOrder.Customer, email)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	view, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// ListOrders handles GET /api/v1/orders - lists recent orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(limit)
	if err != nil {
		return badRequest(ctx, "Invalid limit: "+err.Error())
	}

	views, err := s.listOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = orderFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// InitiatePayment handles POST /api/v1/payments/initiate.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	var initiation servers.PaymentInitiation
	if err := ctx.Bind(&initiation); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(initiation.OrderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	email := ""
	if initiation.Email != nil {
		email = *initiation.Email
	}

	cmd, err := commands.NewInitiatePaymentCommand(id, email)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	result, err := s.initiatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PaymentInitiationResult{
		OrderId:          initiation.OrderId,
		AuthorizationUrl: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// ConfirmPayment handles POST /api/v1/payments/confirm - marks the payment
// as processing and returns the updated order.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var confirmation servers.PaymentConfirmation
	if err := ctx.Bind(&confirmation); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(confirmation.OrderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmProcessingCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err = s.confirmProcessing.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	view, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// errorResponse maps application and domain errors onto HTTP status codes.
// Refused status transitions surface as conflicts so clients can tell a
// lifecycle violation from malformed input.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var invalidErr *errs.ValueIsInvalidError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, commands.ErrPaymentInitiationFailed):
		return jsonError(ctx, http.StatusBadGateway, "Payment provider failed to initiate payment")
	case errors.Is(err, errs.ErrVersionConflict):
		return jsonError(ctx, http.StatusConflict, "Order was modified concurrently, retry the request")
	case errors.As(err, &invalidErr) && invalidErr.ParamName == "status":
		return jsonError(ctx, http.StatusConflict, "Order status does not allow this operation: "+err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		return jsonError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func orderFromDomain(aggregate *order.Order) servers.Order {
	return servers.Order{
		Id:               aggregate.ID().Bytes(),
		Amount:           aggregate.Amount().String(),
		Customer:         aggregate.Customer(),
		Email:            optionalString(aggregate.Email()),
		Status:           servers.OrderStatus(aggregate.Status().String()),
		PaymentReference: aggregate.PaymentReference(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func orderFromView(view queries.OrderView) servers.Order {
	return servers.Order{
		Id:               view.ID.Bytes(),
		Amount:           view.Amount.String(),
		Customer:         view.Customer,
		Email:            optionalString(view.Email),
		Status:           servers.OrderStatus(view.Status),
		PaymentReference: view.PaymentReference,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
