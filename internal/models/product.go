package models

import "github.com/shopspring/decimal"

// Product is the stored shape of a catalog product.
type Product struct {
	ProductID         int             `json:"id" db:"product_id"`
	Description       string          `json:"description" db:"description"`
	Price             decimal.Decimal `json:"price" db:"price"`
	CommissionPerUnit decimal.Decimal `json:"commissionPerUnit" db:"commission_per_unit"` // 0 = no commission
	Sector            string          `json:"sector" db:"sector"`
}
