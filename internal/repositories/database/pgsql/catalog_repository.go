package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/barpos/comanda_backend/internal/models"
	"github.com/barpos/comanda_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for products and attendants.
func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

const productColumns = `product_id, description, price, commission_per_unit, sector`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ProductID, &p.Description, &p.Price, &p.CommissionPerUnit, &p.Sector)
	return p, err
}

// FindProductByID retrieves a product by id.
func (r *PgxCatalogRepository) FindProductByID(ctx context.Context, productID int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	modelProduct, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %d: %w", productID, err)
	}

	product := mapping.ToDomainProduct(modelProduct)
	return &product, nil
}

// ListProducts retrieves the whole catalog.
func (r *PgxCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY product_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return mapping.ToDomainProductSlice(modelProducts), nil
}

const attendantColumns = `attendant_id, nickname, present, active`

func scanAttendant(row pgx.Row) (models.Attendant, error) {
	var a models.Attendant
	err := row.Scan(&a.AttendantID, &a.Nickname, &a.Present, &a.Active)
	return a, err
}

// FindAttendantByID retrieves an attendant by id, whatever their presence.
func (r *PgxCatalogRepository) FindAttendantByID(ctx context.Context, attendantID int) (*domain.Attendant, error) {
	query := `SELECT ` + attendantColumns + ` FROM attendants WHERE attendant_id = $1;`

	modelAttendant, err := scanAttendant(r.Pool.QueryRow(ctx, query, attendantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendant %d: %w", attendantID, err)
	}

	attendant := mapping.ToDomainAttendant(modelAttendant)
	return &attendant, nil
}

// ListActivePresentAttendants retrieves the attendants on shift.
func (r *PgxCatalogRepository) ListActivePresentAttendants(ctx context.Context) ([]domain.Attendant, error) {
	query := `SELECT ` + attendantColumns + ` FROM attendants WHERE active AND present ORDER BY attendant_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendants: %w", err)
	}
	defer rows.Close()

	modelAttendants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Attendant, error) {
		return scanAttendant(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendants: %w", err)
	}
	return mapping.ToDomainAttendantSlice(modelAttendants), nil
}
