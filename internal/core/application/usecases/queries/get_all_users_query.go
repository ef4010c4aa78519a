// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// List-shaped queries go straight to the database and return flat read models;
// single-aggregate queries go through the repositories so callers get fully
// hydrated domain objects.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery retrieves information about all registered users.
type GetAllUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a query to retrieve all users.
// This is a parameterless query that fetches the complete user list.
func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

// GetAllUsersQueryResponse represents user information in the read model.
type GetAllUsersQueryResponse struct {
	ID        kernel.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
