package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves every order through the repository so
// each result carries its items and status history.
type GetAllOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for the full order list.
func NewGetAllOrdersQueryHandler(orderRepo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query. An empty system yields an empty slice.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.GetAll(ctx)
}
