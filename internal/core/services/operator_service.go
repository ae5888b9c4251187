package services

import (
	"context"
	"fmt"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
)

type operatorService struct {
	BaseService
	operators portsrepo.OperatorReader
}

// NewOperatorService creates a new operator service.
func NewOperatorService(operators portsrepo.OperatorReader) portssvc.OperatorSvc {
	return &operatorService{operators: operators}
}

var _ portssvc.OperatorSvc = (*operatorService)(nil)

// ListOperators returns every operator. Password hashes are cleared before the
// operators leave the service.
func (s *operatorService) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	operators, err := s.operators.ListOperators(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list operators")
		return nil, fmt.Errorf("%w: listing operators: %w", apperrors.ErrStorage, err)
	}
	for i := range operators {
		operators[i].PasswordHash = ""
	}
	return operators, nil
}
