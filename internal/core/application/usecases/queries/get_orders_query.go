package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves all orders placed by one user.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the given user's orders.
func NewGetOrdersQuery(userID kernel.UUID) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the ordering user.
func (q GetOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetOrdersQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
