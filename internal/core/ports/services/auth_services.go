package services

import (
	"context"
	"time"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// AuthSvc authenticates till operators.
type AuthSvc interface {
	// Login returns apperrors.ErrUnauthorized for unknown users, inactive
	// operators and wrong passwords alike.
	Login(ctx context.Context, username, password string) (*domain.Operator, string, time.Time, error)
}
