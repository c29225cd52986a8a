package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/commands"
	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/queries"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"
	"github.com/mgdmdev/mgpay-test/internal/generated/servers"
	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverMocks struct {
	createOrder       *mockCreateOrderHandler
	initiatePayment   *mockInitiatePaymentHandler
	confirmProcessing *mockConfirmProcessingHandler
	completeOrder     *mockCompleteOrderHandler
	getOrder          *mockGetOrderHandler
	listOrders        *mockListOrdersHandler
}

func newTestServer(t *testing.T, webhook WebhookConfig) (*Server, *serverMocks) {
	t.Helper()
	mocks := &serverMocks{
		createOrder:       new(mockCreateOrderHandler),
		initiatePayment:   new(mockInitiatePaymentHandler),
		confirmProcessing: new(mockConfirmProcessingHandler),
		completeOrder:     new(mockCompleteOrderHandler),
		getOrder:          new(mockGetOrderHandler),
		listOrders:        new(mockListOrdersHandler),
	}
	server := NewServer(
		mocks.createOrder,
		mocks.initiatePayment,
		mocks.confirmProcessing,
		mocks.completeOrder,
		mocks.getOrder,
		mocks.listOrders,
		webhook,
		slog.Default(),
	)
	return server, mocks
}

func newEchoContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	amount, err := kernel.MoneyFromString("120.50")
	require.NoError(t, err)
	ord, err := order.NewOrder(kernel.NewUUID(), amount, "Ama", "ama@example.com")
	require.NoError(t, err)
	return ord
}

func testView(t *testing.T) queries.OrderView {
	t.Helper()
	ord := testOrder(t)
	return queries.OrderView{
		ID:        ord.ID(),
		Amount:    ord.Amount(),
		Customer:  ord.Customer(),
		Email:     ord.Email(),
		Status:    ord.Status().String(),
		CreatedAt: ord.CreatedAt(),
		UpdatedAt: ord.UpdatedAt(),
	}
}

func TestServer_GetHealth(t *testing.T) {
	server, _ := newTestServer(t, WebhookConfig{})
	ctx, rec := newEchoContext(http.MethodGet, "/health", "")

	err := server.GetHealth(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create order and return 201", func(t *testing.T) {
		// Given
		server, mocks := newTestServer(t, WebhookConfig{})
		created := testOrder(t)
		mocks.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.Customer() == "Ama" && cmd.Amount().String() == "120.50"
		})).Return(created, nil)

		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/orders",
			`{"amount": "120.50", "customer": "Ama", "email": "ama@example.com"}`)

		// When
		err := server.CreateOrder(ctx)

		// Then
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var response servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, created.ID().Bytes(), response.Id)
		assert.Equal(t, servers.Pending, response.Status)
		assert.Equal(t, created.CreatedAt().UTC(), response.CreatedAt.UTC())
		mocks.createOrder.AssertExpectations(t)
	})

	t.Run("should reject non-numeric amount with 400", func(t *testing.T) {
		server, mocks := newTestServer(t, WebhookConfig{})
		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/orders",
			`{"amount": "abc", "customer": "Ama"}`)

		err := server.CreateOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mocks.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject non-positive amount with 400", func(t *testing.T) {
		server, _ := newTestServer(t, WebhookConfig{})
		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/orders",
			`{"amount": "0", "customer": "Ama"}`)

		err := server.CreateOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject blank customer with 400", func(t *testing.T) {
		server, _ := newTestServer(t, WebhookConfig{})
		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/orders",
			`{"amount": "50", "customer": "   "}`)

		err := server.CreateOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetOrder(t *testing.T) {
	t.Run("should return order view", func(t *testing.T) {
		// Given
		server, mocks := newTestServer(t, WebhookConfig{})
		view := testView(t)
		mocks.getOrder.On("Handle", mock.Anything, mock.Anything).Return(view, nil)

		ctx, rec := newEchoContext(http.MethodGet, "/api/v1/orders/"+view.ID.String(), "")

		// When
		err := server.GetOrder(ctx, view.ID.Bytes())

		// Then
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, view.ID.Bytes(), response.Id)
		assert.Equal(t, "Ama", response.Customer)
	})

	t.Run("should return 404 for unknown order", func(t *testing.T) {
		server, mocks := newTestServer(t, WebhookConfig{})
		unknownID := kernel.NewUUID()
		mocks.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.OrderView{}, errs.NewObjectNotFoundError("order", unknownID.String()))

		ctx, rec := newEchoContext(http.MethodGet, "/api/v1/orders/"+unknownID.String(), "")

		err := server.GetOrder(ctx, unknownID.Bytes())

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ListOrders(t *testing.T) {
	t.Run("should list orders with default limit", func(t *testing.T) {
		// Given
		server, mocks := newTestServer(t, WebhookConfig{})
		views := []queries.OrderView{testView(t), testView(t)}
		mocks.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Limit() == queries.DefaultOrdersLimit
		})).Return(views, nil)

		ctx, rec := newEchoContext(http.MethodGet, "/api/v1/orders", "")

		// When
		err := server.ListOrders(ctx, servers.ListOrdersParams{})

		// Then
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response []servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response, 2)
		mocks.listOrders.AssertExpectations(t)
	})

	t.Run("should reject out-of-range limit with 400", func(t *testing.T) {
		server, mocks := newTestServer(t, WebhookConfig{})
		limit := queries.MaxOrdersLimit + 1
		ctx, rec := newEchoContext(http.MethodGet, "/api/v1/orders?limit=101", "")

		err := server.ListOrders(ctx, servers.ListOrdersParams{Limit: &limit})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mocks.listOrders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_InitiatePayment(t *testing.T) {
	t.Run("should initiate payment and return checkout details", func(t *testing.T) {
		// Given
		server, mocks := newTestServer(t, WebhookConfig{})
		orderID := kernel.NewUUID()
		mocks.initiatePayment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.InitiatePaymentCommand) bool {
			return cmd.OrderID().IsEqual(orderID)
		})).Return(commands.InitiatePaymentResult{
			AuthorizationURL: "https://checkout.paystack.com/abc",
			Reference:        "ref_abc12345",
		}, nil)

		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/payments/initiate",
			`{"order_id": "`+orderID.String()+`"}`)

		// When
		err := server.InitiatePayment(ctx)

		// Then
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response servers.PaymentInitiationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "https://checkout.paystack.com/abc", response.AuthorizationUrl)
		assert.Equal(t, "ref_abc12345", response.Reference)
		assert.Equal(t, orderID.Bytes(), response.OrderId)
	})

	t.Run("should map provider failure to 502", func(t *testing.T) {
		server, mocks := newTestServer(t, WebhookConfig{})
		orderID := kernel.NewUUID()
		mocks.initiatePayment.On("Handle", mock.Anything, mock.Anything).
			Return(commands.InitiatePaymentResult{}, commands.ErrPaymentInitiationFailed)

		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/payments/initiate",
			`{"order_id": "`+orderID.String()+`"}`)

		err := server.InitiatePayment(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("should map illegal transition to 409", func(t *testing.T) {
		server, mocks := newTestServer(t, WebhookConfig{})
		orderID := kernel.NewUUID()
		_, transitionErr := order.Completed.InitiatePayment()
		require.Error(t, transitionErr)
		mocks.initiatePayment.On("Handle", mock.Anything, mock.Anything).
			Return(commands.InitiatePaymentResult{}, transitionErr)

		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/payments/initiate",
			`{"order_id": "`+orderID.String()+`"}`)

		err := server.InitiatePayment(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map unknown order to 404", func(t *testing.T) {
		server, mocks := newTestServer(t, WebhookConfig{})
		orderID := kernel.NewUUID()
		mocks.initiatePayment.On("Handle", mock.Anything, mock.Anything).
			Return(commands.InitiatePaymentResult{}, errs.NewObjectNotFoundError("order", orderID.String()))

		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/payments/initiate",
			`{"order_id": "`+orderID.String()+`"}`)

		err := server.InitiatePayment(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ConfirmPayment(t *testing.T) {
	t.Run("should confirm processing and return updated order", func(t *testing.T) {
		// Given
		server, mocks := newTestServer(t, WebhookConfig{})
		view := testView(t)
		view.Status = "processing"
		mocks.confirmProcessing.On("Handle", mock.Anything, mock.Anything).Return(nil)
		mocks.getOrder.On("Handle", mock.Anything, mock.Anything).Return(view, nil)

		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/payments/confirm",
			`{"order_id": "`+view.ID.String()+`"}`)

		// When
		err := server.ConfirmPayment(ctx)

		// Then
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, servers.Processing, response.Status)
		mocks.confirmProcessing.AssertExpectations(t)
	})

	t.Run("should map confirmation of non-initiated order to 409", func(t *testing.T) {
		server, mocks := newTestServer(t, WebhookConfig{})
		orderID := kernel.NewUUID()
		_, transitionErr := order.Pending.Process()
		require.Error(t, transitionErr)
		mocks.confirmProcessing.On("Handle", mock.Anything, mock.Anything).Return(transitionErr)

		ctx, rec := newEchoContext(http.MethodPost, "/api/v1/payments/confirm",
			`{"order_id": "`+orderID.String()+`"}`)

		err := server.ConfirmPayment(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
