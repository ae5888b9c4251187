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
	"github.com/shopspring/decimal"
)

type PgxTabRepository struct {
	BaseRepository
}

// newPgxTabRepository creates a new repository for tabs.
func newPgxTabRepository(pool *pgxpool.Pool) portsrepo.TabRepositoryFacade {
	return &PgxTabRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TabRepositoryFacade = (*PgxTabRepository)(nil)

const tabColumns = `tab_id, customer_label, balance, opened_at, status`

func scanTab(row pgx.Row) (models.Tab, error) {
	var t models.Tab
	err := row.Scan(&t.TabID, &t.CustomerLabel, &t.Balance, &t.OpenedAt, &t.Status)
	return t, err
}

// FindTabByID retrieves a tab by id.
func (r *PgxTabRepository) FindTabByID(ctx context.Context, tabID int) (*domain.Tab, error) {
	query := `SELECT ` + tabColumns + ` FROM tabs WHERE tab_id = $1;`

	modelTab, err := scanTab(r.Pool.QueryRow(ctx, query, tabID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tab %d: %w", tabID, err)
	}

	tab := mapping.ToDomainTab(modelTab)
	return &tab, nil
}

// ListTabs retrieves every tab.
func (r *PgxTabRepository) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	query := `SELECT ` + tabColumns + ` FROM tabs ORDER BY tab_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tabs: %w", err)
	}
	defer rows.Close()

	modelTabs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Tab, error) {
		return scanTab(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tabs: %w", err)
	}
	return mapping.ToDomainTabSlice(modelTabs), nil
}

// SaveTab inserts a tab or replaces the stored one.
func (r *PgxTabRepository) SaveTab(ctx context.Context, tab domain.Tab) error {
	modelTab := mapping.ToModelTab(tab)

	query := `
		INSERT INTO tabs (tab_id, customer_label, balance, opened_at, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tab_id) DO UPDATE SET
			customer_label = EXCLUDED.customer_label,
			balance = EXCLUDED.balance,
			status = EXCLUDED.status;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTab.TabID,
		modelTab.CustomerLabel,
		modelTab.Balance,
		modelTab.OpenedAt,
		modelTab.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to save tab %d: %w", modelTab.TabID, err)
	}
	return nil
}

// CloseTab zeroes the balance and marks the tab closed.
func (r *PgxTabRepository) CloseTab(ctx context.Context, tabID int) error {
	query := `UPDATE tabs SET balance = 0, status = $2 WHERE tab_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, tabID, string(domain.TabClosed))
	if err != nil {
		return fmt.Errorf("failed to close tab %d: %w", tabID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddToBalance raises the balance in a single statement.
func (r *PgxTabRepository) AddToBalance(ctx context.Context, tabID int, amount decimal.Decimal) (*domain.Tab, error) {
	query := `UPDATE tabs SET balance = balance + $2 WHERE tab_id = $1 RETURNING ` + tabColumns + `;`

	modelTab, err := scanTab(r.Pool.QueryRow(ctx, query, tabID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update balance of tab %d: %w", tabID, err)
	}

	tab := mapping.ToDomainTab(modelTab)
	return &tab, nil
}

// RemoveTab deletes a tab row.
func (r *PgxTabRepository) RemoveTab(ctx context.Context, tabID int) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tabs WHERE tab_id = $1;`, tabID)
	if err != nil {
		return fmt.Errorf("failed to remove tab %d: %w", tabID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
