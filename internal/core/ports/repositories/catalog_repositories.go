package repositories

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// ProductReader defines read operations for catalog products.
type ProductReader interface {
	// FindProductByID returns apperrors.ErrNotFound when the id does not resolve.
	FindProductByID(ctx context.Context, productID int) (*domain.Product, error)

	// ListProducts returns the whole catalog ordered by id.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// AttendantReader defines read operations for attendants.
type AttendantReader interface {
	// FindAttendantByID returns apperrors.ErrNotFound when the id does not resolve.
	FindAttendantByID(ctx context.Context, attendantID int) (*domain.Attendant, error)

	// ListActivePresentAttendants returns attendants that are both active and present.
	ListActivePresentAttendants(ctx context.Context) ([]domain.Attendant, error)
}

// CatalogRepositoryFacade combines product and attendant reads.
// The ledger engine never writes to the catalog.
type CatalogRepositoryFacade interface {
	ProductReader
	AttendantReader
}
