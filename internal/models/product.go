package models

import (
	"time"

	"github.com/google/uuid"
)

type DietaryType string

const (
	DietaryVeg    DietaryType = "veg"
	DietaryNonVeg DietaryType = "non_veg"
	DietaryVegan  DietaryType = "vegan"
)

func (d DietaryType) Valid() bool {
	switch d {
	case DietaryVeg, DietaryNonVeg, DietaryVegan:
		return true
	}
	return false
}

// RecipeEntry is the amount of one ingredient consumed by a single unit of a product.
type RecipeEntry struct {
	IngredientID uuid.UUID `json:"ingredientId"`
	Quantity     float64   `json:"quantity"`
}

// Product is a sellable menu item.
type Product struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	TenantID    uuid.UUID     `json:"tenantId" db:"tenant_id"`
	Name        string        `json:"name" db:"name"`
	Category    string        `json:"category" db:"category"`
	Price       float64       `json:"price" db:"price"`
	DietaryType DietaryType   `json:"dietaryType" db:"dietary_type"`
	Available   bool          `json:"available" db:"available"`
	Recipe      []RecipeEntry `json:"recipe" db:"recipe"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}
