package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/utils/accounting"
)

type commissionService struct {
	BaseService
	catalog portsrepo.CatalogRepositoryFacade
}

// NewCommissionService creates a new commission service.
func NewCommissionService(catalog portsrepo.CatalogRepositoryFacade) portssvc.CommissionSvc {
	return &commissionService{catalog: catalog}
}

var _ portssvc.CommissionSvc = (*commissionService)(nil)

// CommissionsForSale splits the commission of a cart between the selected
// attendants. Attendants missing from the catalog are still credited, by id.
func (s *commissionService) CommissionsForSale(ctx context.Context, lines []domain.CartLine, attendantIDs []int) ([]domain.CommissionAllocation, error) {
	products, err := resolveProducts(ctx, s.catalog, lines)
	if err != nil {
		return nil, err
	}
	attendants, err := s.resolveAttendants(ctx, attendantIDs)
	if err != nil {
		return nil, err
	}
	return accounting.AllocateCommissions(lines, attendantIDs, products, attendants), nil
}

func (s *commissionService) resolveAttendants(ctx context.Context, ids []int) (map[int]domain.Attendant, error) {
	attendants := make(map[int]domain.Attendant, len(ids))
	for _, id := range ids {
		if _, ok := attendants[id]; ok {
			continue
		}
		attendant, err := s.catalog.FindAttendantByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Attendant not in catalog, crediting by id", slog.Int("attendant_id", id))
				continue
			}
			return nil, fmt.Errorf("%w: loading attendant %d: %v", apperrors.ErrStorage, id, err)
		}
		attendants[id] = *attendant
	}
	return attendants, nil
}
