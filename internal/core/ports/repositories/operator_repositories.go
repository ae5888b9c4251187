package repositories

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// OperatorReader defines read operations for till operators.
type OperatorReader interface {
	// FindOperatorByUsername returns apperrors.ErrNotFound when no operator matches.
	FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error)

	// ListOperators returns every operator ordered by id.
	ListOperators(ctx context.Context) ([]domain.Operator, error)
}
