package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusServed    OrderStatus = "SERVED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the enumerated statuses. Transitions
// between valid statuses are not restricted.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady, OrderStatusServed, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusServed || s == OrderStatusCancelled
}

type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE_IN"
	OrderTypeTakeaway OrderType = "TAKEAWAY"
	OrderTypeDelivery OrderType = "DELIVERY"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

type Order struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	TenantID      uuid.UUID   `json:"tenantId" db:"tenant_id"`
	Items         []OrderItem `json:"items" db:"items"`
	TotalAmount   float64     `json:"totalAmount" db:"total_amount"`
	Tax           float64     `json:"tax" db:"tax"`
	FinalAmount   float64     `json:"finalAmount" db:"final_amount"`
	Status        OrderStatus `json:"status" db:"status"`
	Type          OrderType   `json:"type" db:"type"`
	TableID       *uuid.UUID  `json:"tableId,omitempty" db:"table_id"`
	PaymentMethod *string     `json:"paymentMethod,omitempty" db:"payment_method"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items         []CartItem `json:"items"`
	TableID       *string    `json:"tableId,omitempty"`
	Type          OrderType  `json:"type"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
}

// UpdateOrderStatusRequest is the status update payload.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
