// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its lifecycle string and indexed for the status
// queries; version carries the optimistic-concurrency counter.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2)"`
	Customer         string
	Email            string
	Status           string `gorm:"index"`
	PaymentReference *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Amount:           aggregate.Amount().Amount(),
		Customer:         aggregate.Customer(),
		Email:            aggregate.Email(),
		Status:           aggregate.Status().String(),
		PaymentReference: aggregate.PaymentReference(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so a corrupt row
// fails loudly instead of producing an invalid order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		amount,
		dto.Customer,
		dto.Email,
		status,
		dto.PaymentReference,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
