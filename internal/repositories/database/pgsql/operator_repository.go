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

type PgxOperatorRepository struct {
	BaseRepository
}

func newPgxOperatorRepository(pool *pgxpool.Pool) portsrepo.OperatorReader {
	return &PgxOperatorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OperatorReader = (*PgxOperatorRepository)(nil)

const operatorColumns = `operator_id, name, username, password_hash, level, active`

func scanOperator(row pgx.Row) (models.Operator, error) {
	var m models.Operator
	err := row.Scan(&m.OperatorID, &m.Name, &m.Username, &m.PasswordHash, &m.Level, &m.Active)
	return m, err
}

// FindOperatorByUsername matches the username without regard to case.
func (r *PgxOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE lower(username) = lower($1);`

	m, err := scanOperator(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator %q: %w", username, err)
	}

	operator := mapping.ToDomainOperator(m)
	return &operator, nil
}

// ListOperators returns every operator ordered by id.
func (r *PgxOperatorRepository) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators ORDER BY operator_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query operators: %w", err)
	}
	defer rows.Close()

	modelOperators, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Operator, error) {
		return scanOperator(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan operators: %w", err)
	}
	return mapping.ToDomainOperatorSlice(modelOperators), nil
}
