// Package kafka implements the EventPublisher port on top of a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"

	"github.com/Shopify/sarama"
)

// orderChangedEvent is the wire format published on every status change.
type orderChangedEvent struct {
	OrderID          string    `json:"order_id"`
	Status           string    `json:"status"`
	PaymentReference *string   `json:"payment_reference,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OrderChangedProducer publishes order lifecycle events to Kafka.
// Messages are keyed by order ID so all events for one order land on
// the same partition in order.
type OrderChangedProducer struct {
	topic    string
	producer sarama.SyncProducer
	logger   *slog.Logger
}

// NewOrderChangedProducer connects a sync producer to the given broker.
// The producer waits for acknowledgment from all in-sync replicas.
func NewOrderChangedProducer(host, topic string, logger *slog.Logger) (*OrderChangedProducer, error) {
	saramaConf := sarama.NewConfig()
	saramaConf.Producer.Return.Successes = true
	saramaConf.Producer.Return.Errors = true
	saramaConf.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer([]string{host}, saramaConf)
	if err != nil {
		return nil, fmt.Errorf("failed to connect kafka producer: %w", err)
	}

	return &OrderChangedProducer{
		topic:    topic,
		producer: producer,
		logger:   logger,
	}, nil
}

// PublishOrderChanged sends an order-changed event for the aggregate.
func (p *OrderChangedProducer) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := orderChangedEvent{
		OrderID:          aggregate.ID().String(),
		Status:           aggregate.Status().String(),
		PaymentReference: aggregate.PaymentReference(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order changed event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.logger.Error("failed to publish order changed event",
			"order_id", event.OrderID, "error", err)
		return err
	}

	p.logger.Debug("published order changed event",
		"order_id", event.OrderID,
		"status", event.Status,
		"partition", partition,
		"offset", offset)
	return nil
}

// Close shuts down the underlying producer.
func (p *OrderChangedProducer) Close() error {
	return p.producer.Close()
}
