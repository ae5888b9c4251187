package services

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// CatalogSvc serves catalog reference data to the till.
type CatalogSvc interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListAttendants(ctx context.Context) ([]domain.Attendant, error)
}
