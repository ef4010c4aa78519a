package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/clock"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the ordering user exists and opens an empty order in Created
// status within a single transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the user read and the order write must share
// a transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the order creation command and returns the created order.
// A missing user fails with errs.ObjectNotFoundError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
