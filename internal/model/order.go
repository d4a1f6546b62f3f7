package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus validates a raw status value. Any value outside the
// four known states is a validation error.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(raw) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return OrderStatus(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Order represents a customer purchase record. Status is the only field
// that may change after creation.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	CustomerName    string      `json:"customerName" db:"customer_name"`
	CustomerAddress string      `json:"customerAddress" db:"customer_address"`
	CustomerPhone   string      `json:"customerPhone" db:"customer_phone"`
	Total           float64     `json:"total" db:"total"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is a snapshot of one purchased catalog entry. FoodItemID is
// a weak reference kept for lookup only; the catalog record may change
// or disappear without invalidating order history.
type OrderItem struct {
	ID         uuid.UUID `json:"-" db:"id"`
	OrderID    uuid.UUID `json:"-" db:"order_id"`
	FoodItemID string    `json:"foodItemId" db:"food_item_id"`
	Name       string    `json:"name" db:"name"`
	Price      float64   `json:"price" db:"price"`
	Quantity   int       `json:"quantity" db:"quantity"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerAddress string             `json:"customerAddress"`
	CustomerPhone   string             `json:"customerPhone"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single line item in an order request.
type OrderItemRequest struct {
	FoodItemID string  `json:"foodItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// UpdateOrderStatusRequest is the payload for progressing an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
