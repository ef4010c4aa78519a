package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllUsersQueryHandler retrieves all user information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler for user list queries.
// Requires a GORM database connection for query execution.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the query to retrieve all users.
// Returns a slice of user read models sorted by registration time.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context,
	query GetAllUsersQuery,
) ([]GetAllUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]GetAllUsersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			created_at
		FROM users
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userResp GetAllUsersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&userResp.Email,
			&userResp.Name,
			&userResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		userResp.ID = userID
		users = append(users, userResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
