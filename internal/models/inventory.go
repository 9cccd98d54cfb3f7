package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a stocked ingredient. Quantity only changes through signed
// deltas, so it may drop below zero when orders outpace restocking.
type InventoryItem struct {
	ID                uuid.UUID `json:"id" db:"id"`
	TenantID          uuid.UUID `json:"tenantId" db:"tenant_id"`
	Name              string    `json:"name" db:"name"`
	Unit              string    `json:"unit" db:"unit"`
	Quantity          float64   `json:"quantity" db:"quantity"`
	CostPerUnit       float64   `json:"costPerUnit" db:"cost_per_unit"`
	LowStockThreshold float64   `json:"lowStockThreshold" db:"low_stock_threshold"`
	Category          string    `json:"category" db:"category"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// IsLowStock reports whether the item sits at or below its threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

type MovementReason string

const (
	MovementOrderDeduction  MovementReason = "order_deduction"
	MovementManualDeduction MovementReason = "manual_deduction"
	MovementRestock         MovementReason = "restock"
)

// StockMovement is one journal row written alongside every quantity delta.
type StockMovement struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	TenantID      uuid.UUID      `json:"tenantId" db:"tenant_id"`
	ItemID        uuid.UUID      `json:"itemId" db:"item_id"`
	Change        float64        `json:"change" db:"change"`
	QuantityAfter float64        `json:"quantityAfter" db:"quantity_after"`
	Reason        MovementReason `json:"reason" db:"reason"`
	ReferenceID   *uuid.UUID     `json:"referenceId,omitempty" db:"reference_id"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
}
