package queries

import (
	"errors"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"
	"github.com/mgdmdev/mgpay-test/internal/pkg/guard"
)

var (
	ErrGetStalePaymentsQueryIsNotConstructed = errors.New(
		"GetStalePaymentsQuery must be created via NewGetStalePaymentsQuery constructor",
	)
)

// GetStalePaymentsQuery finds orders that have been sitting in a
// non-final status for longer than the threshold. Used by the
// reporting job to surface payments that never received a webhook.
type GetStalePaymentsQuery struct {
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePaymentsQuery creates a query for orders idle longer than
// the given threshold. The threshold must be positive.
func NewGetStalePaymentsQuery(threshold time.Duration) (GetStalePaymentsQuery, error) {
	if threshold <= 0 {
		return GetStalePaymentsQuery{}, errs.NewValueIsRequiredError("threshold")
	}
	return GetStalePaymentsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePaymentsQueryIsNotConstructed)
}

// Threshold returns how long an order may stay non-final before it
// counts as stale.
func (q GetStalePaymentsQuery) Threshold() time.Duration {
	return q.threshold
}
