package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order through the repository.
// The result is the full aggregate: header, line items, and status history.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle executes the lookup. A missing order fails with
// errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.Get(ctx, query.OrderID())
}
