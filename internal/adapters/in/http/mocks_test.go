package http

import (
	"context"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/commands"
	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/queries"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type mockCreateOrderHandler struct{ mock.Mock }

func (m *mockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type mockInitiatePaymentHandler struct{ mock.Mock }

func (m *mockInitiatePaymentHandler) Handle(ctx context.Context, cmd commands.InitiatePaymentCommand) (commands.InitiatePaymentResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.InitiatePaymentResult), args.Error(1)
}

type mockConfirmProcessingHandler struct{ mock.Mock }

func (m *mockConfirmProcessingHandler) Handle(ctx context.Context, cmd commands.ConfirmProcessingCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type mockCompleteOrderHandler struct{ mock.Mock }

func (m *mockCompleteOrderHandler) Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type mockGetOrderHandler struct{ mock.Mock }

func (m *mockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type mockListOrdersHandler struct{ mock.Mock }

func (m *mockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}
