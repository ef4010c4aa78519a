package queries

import (
	"context"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
)

// GetUserQueryHandler retrieves a single user through the repository so the
// caller receives a hydrated aggregate rather than a flat read model.
type GetUserQueryHandler struct {
	userRepo ports.UserRepository
}

// NewGetUserQueryHandler creates a handler for single-user lookups.
func NewGetUserQueryHandler(userRepo ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{userRepo: userRepo}
}

// Handle executes the lookup. A missing user fails with
// errs.ObjectNotFoundError.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.userRepo.Get(ctx, query.UserID())
}
