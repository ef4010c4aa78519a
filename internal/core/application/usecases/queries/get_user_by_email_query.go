package queries

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetUserByEmailQueryIsNotConstructed = errors.New(
	"GetUserByEmailQuery must be created via NewGetUserByEmailQuery constructor",
)

// GetUserByEmailQuery retrieves a single user by exact email match.
type GetUserByEmailQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetUserByEmailQuery creates a query for the given email address.
func NewGetUserByEmailQuery(email string) (GetUserByEmailQuery, error) {
	query := GetUserByEmailQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEmail(email); err != nil {
		return GetUserByEmailQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByEmailQueryIsNotConstructed)
}

// Email returns the address to look up.
func (q GetUserByEmailQuery) Email() string {
	return q.email
}

func (q *GetUserByEmailQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = email
	return nil
}
