package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should return the user's orders", func(t *testing.T) {
		ctx := t.Context()
		owner := user.RestoreUser(kernel.NewUUID(), "alice@example.com", "Alice", testTime)
		stored := order.RestoreOrder(kernel.NewUUID(), owner.ID(), order.Created,
			kernel.ZeroMoney(), testTime, 1, nil, nil)

		userRepo := new(MockUserRepository)
		orderRepo := new(MockOrderRepository)
		userRepo.On("Get", mock.Anything, owner.ID()).Return(owner, nil).Once()
		orderRepo.On("GetAllByUser", mock.Anything, owner.ID()).
			Return([]*order.Order{stored}, nil).Once()

		query, err := queries.NewGetOrdersQuery(owner.ID())
		require.NoError(t, err)

		h := queries.NewGetOrdersQueryHandler(userRepo, orderRepo)
		orders, err := h.Handle(ctx, query)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].IsEqual(stored))
		userRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
	})

	t.Run("should return empty slice for user without orders", func(t *testing.T) {
		ctx := t.Context()
		owner := user.RestoreUser(kernel.NewUUID(), "alice@example.com", "Alice", testTime)

		userRepo := new(MockUserRepository)
		orderRepo := new(MockOrderRepository)
		userRepo.On("Get", mock.Anything, owner.ID()).Return(owner, nil).Once()
		orderRepo.On("GetAllByUser", mock.Anything, owner.ID()).
			Return([]*order.Order{}, nil).Once()

		query, err := queries.NewGetOrdersQuery(owner.ID())
		require.NoError(t, err)

		h := queries.NewGetOrdersQueryHandler(userRepo, orderRepo)
		orders, err := h.Handle(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("should fail for unknown user without listing orders", func(t *testing.T) {
		ctx := t.Context()
		userID := kernel.NewUUID()

		userRepo := new(MockUserRepository)
		orderRepo := new(MockOrderRepository)
		userRepo.On("Get", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("user", userID.String())).Once()

		query, err := queries.NewGetOrdersQuery(userID)
		require.NoError(t, err)

		h := queries.NewGetOrdersQueryHandler(userRepo, orderRepo)
		orders, err := h.Handle(ctx, query)
		require.Error(t, err)
		assert.Nil(t, orders)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		orderRepo.AssertNotCalled(t, "GetAllByUser")
	})
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should return hydrated order", func(t *testing.T) {
		ctx := t.Context()
		stored := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Paid,
			kernel.ZeroMoney(), testTime, 2, nil, nil)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

		query, err := queries.NewGetOrderQuery(stored.ID())
		require.NoError(t, err)

		h := queries.NewGetOrderQueryHandler(repo)
		retrieved, err := h.Handle(ctx, query)
		require.NoError(t, err)
		assert.True(t, retrieved.IsEqual(stored))
	})

	t.Run("should propagate not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

		query, err := queries.NewGetOrderQuery(id)
		require.NoError(t, err)

		h := queries.NewGetOrderQueryHandler(repo)
		_, err = h.Handle(ctx, query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
