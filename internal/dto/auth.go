package dto

import (
	"time"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// LoginRequest holds operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=60"`
	Password string `json:"password" binding:"required"`
}

// OperatorResponse is the public view of an operator. It never carries the
// password hash.
type OperatorResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	Active   bool   `json:"active"`
}

// ToOperatorResponse converts a domain.Operator to OperatorResponse DTO
func ToOperatorResponse(op domain.Operator) OperatorResponse {
	return OperatorResponse{
		ID:       op.OperatorID,
		Name:     op.Name,
		Username: op.Username,
		Level:    op.Level,
		Active:   op.Active,
	}
}

// ToOperatorResponses converts a slice of domain operators.
func ToOperatorResponses(operators []domain.Operator) []OperatorResponse {
	out := make([]OperatorResponse, len(operators))
	for i, op := range operators {
		out[i] = ToOperatorResponse(op)
	}
	return out
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Operator  OperatorResponse `json:"operator"`
}

// ToLoginResponse builds the login response for an authenticated operator.
func ToLoginResponse(op *domain.Operator, token string, expiresAt time.Time) LoginResponse {
	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Operator:  ToOperatorResponse(*op),
	}
}
