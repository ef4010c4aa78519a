// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The aggregate maps to three tables: the header row plus owned child rows for
// line items and status history. Monetary columns use numeric so totals stay
// exact; status is stored under its canonical name.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	TotalAmount decimal.Decimal `gorm:"type:numeric"`
	CreatedAt   time.Time
	Version     int
	Items       []OrderItemDTO    `gorm:"foreignKey:OrderID"`
	History     []StatusChangeDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row owned by an order.
type OrderItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	Price       decimal.Decimal `gorm:"type:numeric"`
	Quantity    int
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one status audit row owned by an order.
// Rows are insert-only; nothing in the application updates or deletes them.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	ChangedAt time.Time
}

// TableName specifies the database table name for status change entities.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order domain aggregate to its database representation,
// including all owned child rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     item.OrderID().Bytes(),
			ProductName: item.ProductName(),
			Price:       item.Price().Decimal(),
			Quantity:    item.Quantity(),
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.StatusHistory()))
	for _, change := range aggregate.StatusHistory() {
		history = append(history, StatusChangeDTO{
			ID:        change.ID().Bytes(),
			OrderID:   change.OrderID().Bytes(),
			Status:    change.Status().String(),
			ChangedAt: change.ChangedAt(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount().Decimal(),
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
		Items:       items,
		History:     history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate with its items and history using
// RestoreOrder; the stored total is read back, never recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, order.RestoreOrderItem(
			itemID,
			id,
			itemDTO.ProductName,
			kernel.NewMoney(itemDTO.Price),
			itemDTO.Quantity,
		))
	}

	history := make([]*order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		changeID, changeErr := kernel.UUIDFromBytes(changeDTO.ID[:])
		if changeErr != nil {
			return nil, changeErr
		}

		history = append(history, order.RestoreStatusChange(
			changeID,
			id,
			order.StatusFromString(changeDTO.Status),
			changeDTO.ChangedAt,
		))
	}

	return order.RestoreOrder(
		id,
		userID,
		order.StatusFromString(dto.Status),
		kernel.NewMoney(dto.TotalAmount),
		dto.CreatedAt,
		dto.Version,
		items,
		history,
	), nil
}
