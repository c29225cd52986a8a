package cmd

import (
	"context"
	"log/slog"

	httpin "github.com/mgdmdev/mgpay-test/internal/adapters/in/http"
	"github.com/mgdmdev/mgpay-test/internal/adapters/out/kafka"
	"github.com/mgdmdev/mgpay-test/internal/adapters/out/paystack"
	"github.com/mgdmdev/mgpay-test/internal/adapters/out/postgres"
	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/commands"
	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/queries"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"
	"github.com/mgdmdev/mgpay-test/internal/core/ports"
	"github.com/mgdmdev/mgpay-test/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters and use cases together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	provider   ports.PaymentProvider
	publisher  ports.EventPublisher
	producer   *kafka.OrderChangedProducer
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph. When Kafka is not configured
// the event publisher degrades to a no-op so the service still runs in
// environments without a broker.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	providerOpts := []paystack.Option{}
	if config.PaystackBaseURL != "" {
		providerOpts = append(providerOpts, paystack.WithBaseURL(config.PaystackBaseURL))
	}
	if config.PaystackTimeout > 0 {
		providerOpts = append(providerOpts, paystack.WithTimeout(config.PaystackTimeout))
	}
	root.provider = paystack.NewClient(config.PaystackSecretKey, config.ServiceName, providerOpts...)

	if config.KafkaHost != "" {
		producer, err := kafka.NewOrderChangedProducer(
			config.KafkaHost, config.KafkaOrderChangedTopic, logger)
		if err != nil {
			logger.Warn("kafka unavailable, order events will not be published", "error", err)
			root.publisher = nopEventPublisher{}
		} else {
			root.producer = producer
			root.publisher = producer
		}
	} else {
		root.publisher = nopEventPublisher{}
	}

	return root
}

// Close releases resources held by long-lived adapters.
func (c *CompositionRoot) Close() {
	if c.producer != nil {
		if err := c.producer.Close(); err != nil {
			c.logger.Error("failed to close kafka producer", "error", err)
		}
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.orderUoWFactory(), c.provider, c.publisher)
}

func (c *CompositionRoot) CreateConfirmProcessingCommandHandler() commands.ConfirmProcessingCommandHandler {
	return commands.NewConfirmProcessingCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePaymentsQueryHandler() queries.GetStalePaymentsQueryHandler {
	return queries.NewGetStalePaymentsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	initiatePayment := c.CreateInitiatePaymentCommandHandler()
	confirmProcessing := c.CreateConfirmProcessingCommandHandler()
	completeOrder := c.CreateCompleteOrderCommandHandler()
	getOrder := c.CreateGetOrderQueryHandler()
	listOrders := c.CreateListOrdersQueryHandler()

	return httpin.NewServer(
		&createOrder,
		&initiatePayment,
		&confirmProcessing,
		&completeOrder,
		getOrder,
		listOrders,
		httpin.WebhookConfig{
			ServiceToken: c.config.ServiceToken,
			StrictAuth:   c.config.WebhookStrictAuth,
		},
		c.logger,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStalePaymentsQueryHandler(),
		c.config.StalePaymentThreshold,
		c.logger,
	)
}

// FuncOrderUoWFactory adapts a function to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// nopEventPublisher discards order events when no broker is configured.
type nopEventPublisher struct{}

func (nopEventPublisher) PublishOrderChanged(_ context.Context, _ *order.Order) error {
	return nil
}
