package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testTime)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validUserID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUserID, testTime)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.UserID().IsEqual(validUserID))
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.TotalAmount().IsEqual(kernel.ZeroMoney()))
		assert.Equal(t, testTime, o.CreatedAt())
		assert.Equal(t, 1, o.Version())
		assert.Empty(t, o.Items())
		assert.Empty(t, o.StatusHistory())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validUserID, testTime)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid user ID", func(t *testing.T) {
		var invalidUserID kernel.UUID

		o, err := order.NewOrder(validID, invalidUserID, testTime)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUserID, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should maintain total as sum of subtotals", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("widget", money(t, "9.99"), 3)
		require.NoError(t, err)
		_, err = o.AddItem("gadget", money(t, "1.50"), 2)
		require.NoError(t, err)

		assert.Len(t, o.Items(), 2)
		assert.True(t, o.TotalAmount().IsEqual(money(t, "32.97")))
	})

	t.Run("should return constructed item with back-reference", func(t *testing.T) {
		o := newTestOrder(t)

		item, err := o.AddItem("widget", money(t, "9.99"), 3)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.OrderID().IsEqual(o.ID()))
		assert.Equal(t, "widget", item.ProductName())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Subtotal().IsEqual(money(t, "29.97")))
	})

	t.Run("should fail with zero quantity and leave order unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		item, err := o.AddItem("widget", money(t, "9.99"), 0)

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Empty(t, o.Items())
		assert.True(t, o.TotalAmount().IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should fail with negative price and leave order unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		item, err := o.AddItem("widget", money(t, "-1"), 1)

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, order.ErrInvalidPrice)
		assert.Empty(t, o.Items())
		assert.True(t, o.TotalAmount().IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("", money(t, "1"), 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productName")
		assert.Empty(t, o.Items())
	})

	t.Run("should accept zero price", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("freebie", kernel.ZeroMoney(), 1)

		require.NoError(t, err)
		assert.True(t, o.TotalAmount().IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should fail on cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(testTime))

		item, err := o.AddItem("widget", money(t, "9.99"), 1)

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, order.ErrOrderCancelled)
	})

	t.Run("should still allow adding to a paid order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))

		_, err := o.AddItem("widget", money(t, "9.99"), 1)

		require.NoError(t, err)
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should pay created order and record history", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Pay(testTime)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		require.Len(t, o.StatusHistory(), 1)
		change := o.StatusHistory()[0]
		assert.Equal(t, order.Paid, change.Status())
		assert.Equal(t, testTime, change.ChangedAt())
		assert.True(t, change.OrderID().IsEqual(o.ID()))
	})

	t.Run("should fail on second pay without touching history", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))

		err := o.Pay(testTime.Add(time.Minute))

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
		assert.Equal(t, order.Paid, o.Status())
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("should fail on shipped order with already-paid error", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))
		require.NoError(t, o.Ship(testTime))

		err := o.Pay(testTime)

		require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	})

	t.Run("should fail on completed order with already-paid error", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))
		require.NoError(t, o.Ship(testTime))
		require.NoError(t, o.Complete(testTime))

		err := o.Pay(testTime)

		require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	})

	t.Run("should fail on cancelled order with cancelled error", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(testTime))

		err := o.Pay(testTime)

		require.ErrorIs(t, err, order.ErrOrderCancelled)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Len(t, o.StatusHistory(), 1)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel created order exactly once", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Cancel(testTime)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		require.Len(t, o.StatusHistory(), 1)
		assert.Equal(t, order.Cancelled, o.StatusHistory()[0].Status())
	})

	t.Run("should fail on second cancel", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(testTime))

		err := o.Cancel(testTime)

		require.ErrorIs(t, err, order.ErrOrderCancelled)
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("should fail on paid order with already-paid error", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))

		err := o.Cancel(testTime)

		require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should fail on shipped order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))
		require.NoError(t, o.Ship(testTime))

		err := o.Cancel(testTime)

		require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("should ship paid order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))

		err := o.Ship(testTime)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should fail before payment with invalid transition", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Ship(testTime)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Created, transitionErr.From)
		assert.Equal(t, order.Shipped, transitionErr.Attempted)
	})

	t.Run("should fail on already shipped order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))
		require.NoError(t, o.Ship(testTime))

		err := o.Ship(testTime)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Len(t, o.StatusHistory(), 2)
	})

	t.Run("should fail on cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(testTime))

		err := o.Ship(testTime)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("should complete shipped order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))
		require.NoError(t, o.Ship(testTime))

		err := o.Complete(testTime)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should fail before shipment with invalid transition", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))

		err := o.Complete(testTime)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should fail on completed order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay(testTime))
		require.NoError(t, o.Ship(testTime))
		require.NoError(t, o.Complete(testTime))

		err := o.Complete(testTime)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_FullLifecycle(t *testing.T) {
	t.Run("created to completed with full history", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("widget", money(t, "9.99"), 3)
		require.NoError(t, err)
		assert.True(t, o.TotalAmount().IsEqual(money(t, "29.97")))

		require.NoError(t, o.Pay(testTime))
		assert.Equal(t, order.Paid, o.Status())
		assert.Len(t, o.StatusHistory(), 1)

		require.NoError(t, o.Ship(testTime.Add(time.Hour)))
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.Complete(testTime.Add(2*time.Hour)))
		assert.Equal(t, order.Completed, o.Status())

		history := o.StatusHistory()
		require.Len(t, history, 3)
		assert.Equal(t, order.Paid, history[0].Status())
		assert.Equal(t, order.Shipped, history[1].Status())
		assert.Equal(t, order.Completed, history[2].Status())
		assert.True(t, history[0].ChangedAt().Before(history[1].ChangedAt()))
		assert.True(t, history[1].ChangedAt().Before(history[2].ChangedAt()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full aggregate without validation", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		items := []*order.OrderItem{
			order.RestoreOrderItem(kernel.NewUUID(), id, "widget", money(t, "9.99"), 3),
		}
		history := []*order.StatusChange{
			order.RestoreStatusChange(kernel.NewUUID(), id, order.Paid, testTime),
		}

		o := order.RestoreOrder(id, userID, order.Paid, money(t, "29.97"), testTime, 4, items, history)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.True(t, o.TotalAmount().IsEqual(money(t, "29.97")))
		assert.Len(t, o.Items(), 1)
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("restored order continues the lifecycle where it left off", func(t *testing.T) {
		id := kernel.NewUUID()
		o := order.RestoreOrder(id, kernel.NewUUID(), order.Paid, kernel.ZeroMoney(), testTime, 2,
			nil, []*order.StatusChange{
				order.RestoreStatusChange(kernel.NewUUID(), id, order.Paid, testTime),
			})

		require.NoError(t, o.Ship(testTime.Add(time.Minute)))

		assert.Equal(t, order.Shipped, o.Status())
		assert.Len(t, o.StatusHistory(), 2)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
