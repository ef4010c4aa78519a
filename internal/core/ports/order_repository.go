package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders always load and store as a whole: header, line items, and status
// history together.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// version must match the aggregate's loaded version; a stale aggregate
	// fails with errs.ConcurrencyConflictError and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a fully hydrated order by its unique identifier.
	// A missing order fails with errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders, each fully hydrated.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByUser retrieves all orders placed by the given user.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}
