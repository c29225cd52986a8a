package queries

import (
	"errors"

	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"
	"github.com/mgdmdev/mgpay-test/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

const (
	// DefaultOrdersLimit is applied when the caller does not request a limit.
	DefaultOrdersLimit = 10

	// MaxOrdersLimit caps how many orders a single listing may return.
	MaxOrdersLimit = 100
)

// ListOrdersQuery retrieves the most recently created orders.
// Results are ordered newest first and capped at the requested limit.
//
// Example:
//
//	query, err := NewListOrdersQuery(0) // default limit
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d recent orders\n", len(orders))
type ListOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query with the given limit.
// A limit of zero selects DefaultOrdersLimit; limits outside
// [1, MaxOrdersLimit] are rejected.
func NewListOrdersQuery(limit int) (ListOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultOrdersLimit
	}
	if limit < 1 || limit > MaxOrdersLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersLimit)
	}
	return ListOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Limit returns how many orders at most the query will fetch.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}
