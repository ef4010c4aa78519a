// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The unique index on email is the authoritative uniqueness guarantee; the
// application-level pre-check only provides a friendlier fast path.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	Name      string
	CreatedAt time.Time
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Email:     aggregate.Email(),
		Name:      aggregate.Name(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
// Reconstructs the aggregate using RestoreUser: stored rows hydrate without
// re-running creation-time validation.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.Name, dto.CreatedAt), nil
}
