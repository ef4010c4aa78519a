package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewAddOrderItemCommand(t *testing.T) {
	validOrderID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewAddOrderItemCommand(validOrderID, "widget", mustMoney(t, "9.99"), 3)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "widget", cmd.ProductName())
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(validOrderID, "widget", mustMoney(t, "9.99"), 0)

		require.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(validOrderID, "widget", mustMoney(t, "-1"), 1)

		require.ErrorIs(t, err, order.ErrInvalidPrice)
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(validOrderID, "", mustMoney(t, "9.99"), 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productName")
	})
}
