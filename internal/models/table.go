package models

import (
	"time"

	"github.com/google/uuid"
)

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
)

// Table is a dining table. CurrentOrderID is a weak link: it is set when an
// order is placed and only cleared by an explicit release.
type Table struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	TenantID       uuid.UUID   `json:"tenantId" db:"tenant_id"`
	Name           string      `json:"name" db:"name"`
	Capacity       int         `json:"capacity" db:"capacity"`
	Status         TableStatus `json:"status" db:"status"`
	CurrentOrderID *uuid.UUID  `json:"currentOrderId,omitempty" db:"current_order_id"`
	CurrentOrder   *Order      `json:"currentOrder,omitempty" db:"-"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}
