package domain

// Operator is a till user. The operator id is part of every ledger record name.
type Operator struct {
	OperatorID   int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Level        int    `json:"level"`
	Active       bool   `json:"active"`
}
