package http

import (
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
)

// Request bodies. Monetary amounts travel as strings so clients cannot lose
// precision to binary floats on the way in.
type (
	// RegisterUserRequest is the body for POST /api/v1/users.
	RegisterUserRequest struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	// CreateOrderRequest is the body for POST /api/v1/orders.
	CreateOrderRequest struct {
		UserID string `json:"user_id"`
	}

	// AddItemRequest is the body for POST /api/v1/orders/:id/items.
	AddItemRequest struct {
		ProductName string `json:"product_name"`
		Price       string `json:"price"`
		Quantity    int    `json:"quantity"`
	}
)

// Response bodies.
type (
	// ErrorResponse is the uniform error payload.
	ErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	// UserResponse represents a user.
	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}

	// OrderItemResponse represents one line item of an order.
	OrderItemResponse struct {
		ID          string `json:"id"`
		ProductName string `json:"product_name"`
		Price       string `json:"price"`
		Quantity    int    `json:"quantity"`
		Subtotal    string `json:"subtotal"`
	}

	// StatusChangeResponse represents one entry of an order's audit trail.
	StatusChangeResponse struct {
		Status    string    `json:"status"`
		ChangedAt time.Time `json:"changed_at"`
	}

	// OrderResponse represents a full order aggregate.
	OrderResponse struct {
		ID          string              `json:"id"`
		UserID      string              `json:"user_id"`
		Status      string              `json:"status"`
		TotalAmount string              `json:"total_amount"`
		CreatedAt   time.Time           `json:"created_at"`
		Items       []OrderItemResponse `json:"items"`
	}
)

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Email:     u.Email(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt(),
	}
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Price:       item.Price().String(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:          o.ID().String(),
		UserID:      o.UserID().String(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount().String(),
		CreatedAt:   o.CreatedAt(),
		Items:       items,
	}
}
