package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler handles adding a line item to an order.
// Loads the full aggregate, lets it enforce its own rules, and persists the
// result: the new item row plus the updated header total.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding line items.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated order.
// A missing order fails with errs.ObjectNotFoundError; adding to a cancelled
// order fails with order.OrderCancelledError.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if _, err = aggregate.AddItem(cmd.ProductName(), cmd.Price(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
