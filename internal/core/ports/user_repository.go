package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicate email fails with
	// user.EmailAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	// A missing user fails with errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by exact email match.
	// A missing user fails with errs.ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]*user.User, error)
}
