package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetOrdersQueryHandler retrieves all orders for one user through the
// repositories. The user must exist: a list for an unknown user is an error,
// not an empty result, so callers can tell "no orders yet" from a typo'd id.
type GetOrdersQueryHandler struct {
	userRepo  ports.UserRepository
	orderRepo ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for per-user order lists.
func NewGetOrdersQueryHandler(userRepo ports.UserRepository, orderRepo ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// Handle executes the query and returns fully hydrated orders, possibly an
// empty slice. A missing user fails with errs.ObjectNotFoundError.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.userRepo.Get(ctx, query.UserID()); err != nil {
		return nil, err
	}

	return h.orderRepo.GetAllByUser(ctx, query.UserID())
}
