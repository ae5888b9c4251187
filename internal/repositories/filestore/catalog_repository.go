package filestore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/barpos/comanda_backend/internal/models"
	"github.com/barpos/comanda_backend/internal/utils/mapping"
)

// FileCatalogRepository reads products.json and attendants.json. Both files
// are maintained by the back office, so every call reads them afresh.
type FileCatalogRepository struct {
	dataDir string
}

func newFileCatalogRepository(dataDir string) portsrepo.CatalogRepositoryFacade {
	return &FileCatalogRepository{dataDir: dataDir}
}

var _ portsrepo.CatalogRepositoryFacade = (*FileCatalogRepository)(nil)

func (r *FileCatalogRepository) loadProducts() ([]models.Product, error) {
	var products []models.Product
	if _, err := readJSON(filepath.Join(r.dataDir, productsFile), &products); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return products, nil
}

func (r *FileCatalogRepository) loadAttendants() ([]models.Attendant, error) {
	var attendants []models.Attendant
	if _, err := readJSON(filepath.Join(r.dataDir, attendantsFile), &attendants); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return attendants, nil
}

// FindProductByID retrieves a product by id.
func (r *FileCatalogRepository) FindProductByID(ctx context.Context, productID int) (*domain.Product, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ProductID == productID {
			product := mapping.ToDomainProduct(p)
			return &product, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListProducts returns the catalog in file order.
func (r *FileCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainProductSlice(products), nil
}

// FindAttendantByID retrieves an attendant by id, whatever their presence.
func (r *FileCatalogRepository) FindAttendantByID(ctx context.Context, attendantID int) (*domain.Attendant, error) {
	attendants, err := r.loadAttendants()
	if err != nil {
		return nil, err
	}
	for _, a := range attendants {
		if a.AttendantID == attendantID {
			attendant := mapping.ToDomainAttendant(a)
			return &attendant, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListActivePresentAttendants returns the attendants on shift.
func (r *FileCatalogRepository) ListActivePresentAttendants(ctx context.Context) ([]domain.Attendant, error) {
	attendants, err := r.loadAttendants()
	if err != nil {
		return nil, err
	}
	onShift := make([]models.Attendant, 0, len(attendants))
	for _, a := range attendants {
		if a.Active && a.Present {
			onShift = append(onShift, a)
		}
	}
	return mapping.ToDomainAttendantSlice(onShift), nil
}
