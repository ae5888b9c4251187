package pgsql

import (
	"context"
	"fmt"

	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoomConfigRepository struct {
	BaseRepository
}

func newPgxRoomConfigRepository(pool *pgxpool.Pool) portsrepo.RoomConfigReader {
	return &PgxRoomConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RoomConfigReader = (*PgxRoomConfigRepository)(nil)

// GetRoomConfig reads the key/value room_config table. Values are stored as
// text and converted the same way as the JSON document.
func (r *PgxRoomConfigRepository) GetRoomConfig(ctx context.Context) (domain.RoomConfig, error) {
	rows, err := r.Pool.Query(ctx, `SELECT key, value FROM room_config;`)
	if err != nil {
		return domain.RoomConfig{}, fmt.Errorf("failed to query room config: %w", err)
	}
	defer rows.Close()

	doc := make(map[string]any)
	var key, value string
	_, err = pgx.ForEachRow(rows, []any{&key, &value}, func() error {
		doc[key] = value
		return nil
	})
	if err != nil {
		return domain.RoomConfig{}, fmt.Errorf("failed to scan room config: %w", err)
	}
	return domain.RoomConfigFromMap(doc), nil
}
