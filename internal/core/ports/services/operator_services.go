package services

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// OperatorSvc lists till operators.
type OperatorSvc interface {
	ListOperators(ctx context.Context) ([]domain.Operator, error)
}
