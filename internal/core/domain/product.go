package domain

import "github.com/shopspring/decimal"

// Product is catalog reference data. The ledger engine only ever reads it.
type Product struct {
	ProductID         int             `json:"id"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	CommissionPerUnit decimal.Decimal `json:"commissionPerUnit"` // zero means no commission
	Sector            string          `json:"sector"`
}

// HasCommission reports whether selling the product earns attendants a commission.
func (p Product) HasCommission() bool {
	return p.CommissionPerUnit.IsPositive()
}

// PlaceholderProduct stands in for a product that no longer resolves in the catalog.
// It carries no price so it never inflates a recomputed total.
func PlaceholderProduct(productID int, description string) Product {
	return Product{
		ProductID:         productID,
		Description:       description,
		Price:             decimal.Zero,
		CommissionPerUnit: decimal.Zero,
	}
}
