package queries

import (
	"database/sql"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model returned by order queries.
// Amounts and identifiers are converted back to domain types so callers
// never see raw database values.
type OrderView struct {
	ID               kernel.UUID
	Amount           kernel.Money
	Customer         string
	Email            string
	Status           string
	PaymentReference *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// orderViewColumns is the column list every order query selects,
// in the order scanOrderView expects.
const orderViewColumns = `
	id,
	amount,
	customer,
	email,
	status,
	payment_reference,
	created_at,
	updated_at`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var id uuid.UUID
	var amount decimal.Decimal
	var paymentReference sql.NullString

	err := rows.Scan(
		&id,
		&amount,
		&view.Customer,
		&view.Email,
		&view.Status,
		&paymentReference,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return OrderView{}, idErr
	}
	view.ID = orderID

	money, moneyErr := kernel.NewMoney(amount)
	if moneyErr != nil {
		return OrderView{}, moneyErr
	}
	view.Amount = money

	if paymentReference.Valid {
		view.PaymentReference = &paymentReference.String
	}

	return view, nil
}
