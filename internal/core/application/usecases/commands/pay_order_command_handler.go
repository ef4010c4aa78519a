package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/clock"
)

// PayOrderCommandHandler handles order payment.
//
// "Paid at most once" is enforced twice: the aggregate rejects Pay on anything
// but a Created order, and the repository's version check on Update rejects
// the second of two racing payments that both loaded a Created order.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewPayOrderCommandHandler creates a handler for order payment.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the payment command and returns the updated order.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Pay(h.clock.Now()); err != nil {
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
