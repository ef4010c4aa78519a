package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves an order's status history from the
// database. Uses direct SQL for the list itself; a freshly created order that
// has never transitioned yields an empty slice, not an error.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's transitions in
// chronological order. A missing order fails with errs.ObjectNotFoundError.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1) FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	history := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			changed_at
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY changed_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var changeResp GetOrderHistoryQueryResponse
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&status,
			&changeResp.ChangedAt,
		)
		if err != nil {
			return nil, err
		}

		changeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		changeResp.ID = changeID
		changeResp.Status = order.StatusFromString(status)
		history = append(history, changeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
