package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tab is the stored shape of a customer tab.
type Tab struct {
	TabID         int             `json:"id" db:"tab_id"`
	CustomerLabel string          `json:"customerLabel" db:"customer_label"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	OpenedAt      time.Time       `json:"openedAt" db:"opened_at"`
	Status        string          `json:"status" db:"status"` // OPEN or CLOSED
}
