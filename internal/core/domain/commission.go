package domain

import "github.com/shopspring/decimal"

// CommissionContribution is one sale line's share credited to a single attendant.
type CommissionContribution struct {
	Product            Product         `json:"product"`
	PerAttendantAmount decimal.Decimal `json:"perAttendantAmount"`
	Quantity           int             `json:"quantity"`
}

// Total is the per-attendant unit share times quantity.
func (c CommissionContribution) Total() decimal.Decimal {
	return c.PerAttendantAmount.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CommissionAllocation is everything one attendant earned on a sale. Derived, never persisted.
type CommissionAllocation struct {
	Attendant         Attendant                `json:"attendant"`
	LineContributions []CommissionContribution `json:"lineContributions"`
	TotalCommission   decimal.Decimal          `json:"totalCommission"`
}
