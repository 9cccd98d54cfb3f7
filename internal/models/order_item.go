package models

import "github.com/google/uuid"

// OrderItem is the line snapshot stored with an order. Name and price are
// copied at checkout so later menu edits do not rewrite history.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Notes     *string   `json:"notes,omitempty"`
}

// CartItem is a line as submitted by the ordering UI.
type CartItem struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Notes     *string `json:"notes,omitempty"`
}
