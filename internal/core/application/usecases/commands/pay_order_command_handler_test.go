package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/clock"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Created)
	cmd, _ := commands.NewPayOrderCommand(stored.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory, clock.Fixed(testTime))
	paid, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Paid, paid.Status())
	require.Len(t, paid.StatusHistory(), 1)
	assert.Equal(t, testTime, paid.StatusHistory()[0].ChangedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Paid)
	cmd, _ := commands.NewPayOrderCommand(stored.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory, clock.Fixed(testTime))
	paid, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, paid)
	require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	assert.Len(t, stored.StatusHistory(), 1)
}

func TestPayOrderCommandHandler_Handle_ConcurrentPayment(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Created)
	cmd, _ := commands.NewPayOrderCommand(stored.ID())

	conflict := errs.NewConcurrencyConflictError("orderID", stored.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory, clock.Fixed(testTime))
	paid, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, paid)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}
