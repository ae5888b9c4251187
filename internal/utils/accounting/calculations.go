package accounting

import (
	"fmt"

	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineAmount is price times quantity.
func LineAmount(product domain.Product, quantity int) decimal.Decimal {
	return product.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// SaleTotal sums price times quantity over every cart line. Every line's product
// must be present in products.
func SaleTotal(lines []domain.CartLine, products map[int]domain.Product) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return decimal.Zero, fmt.Errorf("product %d not resolved", line.ProductID)
		}
		total = total.Add(LineAmount(product, line.Quantity))
	}
	return total, nil
}

// AllocateCommissions splits each commissioned line evenly between the
// attendants named on it. Only attendants in selected are credited; an
// attendant named on a line but not selected is skipped without error.
// Attendants that earn nothing are left out. Output order follows the first
// appearance of each id in selected.
//
// Lines whose product is missing from products contribute nothing. Attendants
// missing from attendants are reported with their id only.
func AllocateCommissions(
	lines []domain.CartLine,
	selected []int,
	products map[int]domain.Product,
	attendants map[int]domain.Attendant,
) []domain.CommissionAllocation {
	order := make([]int, 0, len(selected))
	buckets := make(map[int]*domain.CommissionAllocation, len(selected))
	for _, id := range selected {
		if _, seen := buckets[id]; seen {
			continue
		}
		attendant, ok := attendants[id]
		if !ok {
			attendant = domain.Attendant{AttendantID: id}
		}
		buckets[id] = &domain.CommissionAllocation{Attendant: attendant, TotalCommission: decimal.Zero}
		order = append(order, id)
	}

	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok || !product.HasCommission() || len(line.AttendantIDs) == 0 {
			continue
		}
		share := product.CommissionPerUnit.Div(decimal.NewFromInt(int64(len(line.AttendantIDs))))
		for _, id := range line.AttendantIDs {
			bucket, ok := buckets[id]
			if !ok {
				continue
			}
			contribution := domain.CommissionContribution{
				Product:            product,
				PerAttendantAmount: share,
				Quantity:           line.Quantity,
			}
			bucket.LineContributions = append(bucket.LineContributions, contribution)
			bucket.TotalCommission = bucket.TotalCommission.Add(contribution.Total())
		}
	}

	result := make([]domain.CommissionAllocation, 0, len(order))
	for _, id := range order {
		if bucket := buckets[id]; len(bucket.LineContributions) > 0 {
			result = append(result, *bucket)
		}
	}
	return result
}
