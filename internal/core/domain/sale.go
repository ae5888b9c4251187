package domain

import "github.com/shopspring/decimal"

// CartLine is one line of a proposed sale.
type CartLine struct {
	ProductID    int   `json:"productId"`
	Quantity     int   `json:"quantity"`
	AttendantIDs []int `json:"attendantIds"`
}

// LedgerKey is the composite key encoded in a ledger record name.
type LedgerKey struct {
	TabID      int
	OperatorID int
	SequenceID int
}

// LedgerLine is one persisted line of a ledger record body.
type LedgerLine struct {
	ProductID    int
	Description  string
	Quantity     int
	AttendantIDs []int
}

// SaleResult is returned by a successful post.
type SaleResult struct {
	SequenceID  int             `json:"sequenceId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	RecordName  string          `json:"recordName"`
}

// SaleItem is a ledger line with its product data resolved from the catalog.
type SaleItem struct {
	ProductID         int             `json:"productId"`
	Description       string          `json:"description"`
	Quantity          int             `json:"quantity"`
	AttendantIDs      []int           `json:"attendantIds"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	CommissionPerUnit decimal.Decimal `json:"commissionPerUnit"`
}

// LineTotal is unit price times quantity.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Product rebuilds the product view of the item.
func (i SaleItem) Product() Product {
	return Product{
		ProductID:         i.ProductID,
		Description:       i.Description,
		Price:             i.UnitPrice,
		CommissionPerUnit: i.CommissionPerUnit,
	}
}

// CartLine rebuilds the cart line the item was posted from.
func (i SaleItem) CartLine() CartLine {
	return CartLine{ProductID: i.ProductID, Quantity: i.Quantity, AttendantIDs: i.AttendantIDs}
}

// StructuredSale is a ledger record reconstructed for display, reprint or export.
type StructuredSale struct {
	RecordName string          `json:"recordName"`
	TabID      int             `json:"tabId"`
	OperatorID int             `json:"operatorId"`
	SequenceID int             `json:"sequenceId"`
	Items      []SaleItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
}

// TotalQuantity sums the quantity of every item.
func (s StructuredSale) TotalQuantity() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// CheckoutRequest is a sale as submitted from the till.
type CheckoutRequest struct {
	TabID        int
	OperatorID   int
	Lines        []CartLine
	AttendantIDs []int
}

// CheckoutResult reports a posted sale and what happened when printing it.
// A print failure never undoes the sale.
type CheckoutResult struct {
	Sale               SaleResult             `json:"sale"`
	Printed            bool                   `json:"printed"`
	PrintError         string                 `json:"printError,omitempty"`
	Commissions        []CommissionAllocation `json:"commissions,omitempty"`
	CommissionReceipts int                    `json:"commissionReceipts"`
}
