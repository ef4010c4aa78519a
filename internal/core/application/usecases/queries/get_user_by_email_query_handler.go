package queries

import (
	"context"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
)

// GetUserByEmailQueryHandler retrieves a single user by email through the
// repository. Lookup is by exact match; there is no normalization.
type GetUserByEmailQueryHandler struct {
	userRepo ports.UserRepository
}

// NewGetUserByEmailQueryHandler creates a handler for email lookups.
func NewGetUserByEmailQueryHandler(userRepo ports.UserRepository) GetUserByEmailQueryHandler {
	return GetUserByEmailQueryHandler{userRepo: userRepo}
}

// Handle executes the lookup. A missing user fails with
// errs.ObjectNotFoundError.
func (h GetUserByEmailQueryHandler) Handle(ctx context.Context, query GetUserByEmailQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.userRepo.GetByEmail(ctx, query.Email())
}
