package services

import (
	"dinepos/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals are the computed amounts of an order.
type Totals struct {
	TotalAmount float64
	Tax         float64
	FinalAmount float64
}

// ComputeTotals sums price × quantity over all lines in decimal, then derives
// tax and final amount in float64 from the rounded total. Clients recompute
// tax == totalAmount × rate and finalAmount == totalAmount + tax with IEEE
// doubles, so those two steps must use the same arithmetic.
func ComputeTotals(lines []models.OrderItem, taxRate decimal.Decimal) Totals {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	totalAmount := total.InexactFloat64()
	tax := totalAmount * taxRate.InexactFloat64()
	return Totals{
		TotalAmount: totalAmount,
		Tax:         tax,
		FinalAmount: totalAmount + tax,
	}
}

// Deduction is one planned ledger decrement.
type Deduction struct {
	ItemID    uuid.UUID
	Amount    float64
	ProductID uuid.UUID
}

// PlanDeductions expands every line through its product recipe, in line order
// then recipe order. Lines whose product has no recipe contribute nothing.
// The same ingredient used by two lines yields two deductions.
func PlanDeductions(lines []models.OrderItem, recipes map[uuid.UUID][]models.RecipeEntry) []Deduction {
	var plan []Deduction
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		for _, entry := range recipes[line.ProductID] {
			plan = append(plan, Deduction{
				ItemID:    entry.IngredientID,
				Amount:    decimal.NewFromFloat(entry.Quantity).Mul(qty).InexactFloat64(),
				ProductID: line.ProductID,
			})
		}
	}
	return plan
}
