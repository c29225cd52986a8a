package commands_test

import (
	"testing"

	"github.com/mgdmdev/mgpay-test/internal/core/application/usecases/commands"
	"github.com/mgdmdev/mgpay-test/internal/core/domain/model/kernel"
	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	money, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return money
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, mustMoney(t, "50"), "Ama", "ama@example.com")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "50", cmd.Amount().String())
		assert.Equal(t, "Ama", cmd.Customer())
		assert.Equal(t, "ama@example.com", cmd.Email())
	})

	t.Run("should trim customer and email", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), mustMoney(t, "50"), " Ama ", " ama@example.com ")

		require.NoError(t, err)
		assert.Equal(t, "Ama", cmd.Customer())
		assert.Equal(t, "ama@example.com", cmd.Email())
	})

	t.Run("should reject blank customer", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), mustMoney(t, "50"), "   ", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed order id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewCreateOrderCommand(zeroID, mustMoney(t, "50"), "Ama", "")

		require.Error(t, err)
	})

	t.Run("should reject unconstructed amount", func(t *testing.T) {
		var zeroMoney kernel.Money

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), zeroMoney, "Ama", "")

		require.Error(t, err)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
	})
}
