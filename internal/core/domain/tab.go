package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TabStatus indicates whether a tab still accepts sales.
type TabStatus string

const (
	TabOpen   TabStatus = "OPEN"
	TabClosed TabStatus = "CLOSED"
)

// Tab ("comanda") is a customer's running bill.
type Tab struct {
	TabID         int             `json:"id"`
	CustomerLabel string          `json:"customerLabel"`
	Balance       decimal.Decimal `json:"balance"`
	OpenedAt      time.Time       `json:"openedAt"`
	Status        TabStatus       `json:"status"`
}

// AddSale increments the running balance by a posted sale total.
func (t *Tab) AddSale(amount decimal.Decimal) {
	t.Balance = t.Balance.Add(amount)
}

// Close zeroes the balance and marks the tab closed.
func (t *Tab) Close() {
	t.Balance = decimal.Zero
	t.Status = TabClosed
}

// IsOpen reports whether the tab is open.
func (t Tab) IsOpen() bool {
	return t.Status != TabClosed
}
