package services

import (
	"context"
	"fmt"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
)

type catalogService struct {
	BaseService
	catalog portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog portsrepo.CatalogRepositoryFacade) portssvc.CatalogSvc {
	return &catalogService{catalog: catalog}
}

var _ portssvc.CatalogSvc = (*catalogService)(nil)

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("%w: listing products: %v", apperrors.ErrStorage, err)
	}
	return products, nil
}

func (s *catalogService) ListAttendants(ctx context.Context) ([]domain.Attendant, error) {
	attendants, err := s.catalog.ListActivePresentAttendants(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendants")
		return nil, fmt.Errorf("%w: listing attendants: %v", apperrors.ErrStorage, err)
	}
	return attendants, nil
}
