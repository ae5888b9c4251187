package models

// Operator is the stored shape of a till operator. Unlike the domain type it
// carries the password hash in its JSON form.
type Operator struct {
	OperatorID   int    `json:"id" db:"operator_id"`
	Name         string `json:"name" db:"name"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"passwordHash" db:"password_hash"`
	Level        int    `json:"level" db:"level"`
	Active       bool   `json:"active" db:"active"`
}
