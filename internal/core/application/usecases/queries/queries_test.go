package queries_test

import (
	"testing"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/queries"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should reject unconstructed order id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := queries.NewGetOrderQuery(zeroID)

		require.Error(t, err)
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetOrderQueryIsNotConstructed, err)
	})
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(25)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 25, query.Limit())
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(0)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultOrdersLimit, query.Limit())
	})

	t.Run("should reject negative limit", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject limit above the cap", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(queries.MaxOrdersLimit + 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.ListOrdersQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrListOrdersQueryIsNotConstructed, err)
	})
}

func TestNewGetStalePaymentsQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetStalePaymentsQuery(30 * time.Minute)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 30*time.Minute, query.Threshold())
	})

	t.Run("should reject non-positive threshold", func(t *testing.T) {
		_, err := queries.NewGetStalePaymentsQuery(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
