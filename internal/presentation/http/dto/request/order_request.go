package request

import "github.com/google/uuid"

// OrderItemRequest represents one line in an order submission
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// CreateOrderRequest represents a sale or purchase submission
type CreateOrderRequest struct {
	CounterpartID uuid.UUID          `json:"counterpart_id" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"dive"`
}
