package repositories

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// RoomConfigReader loads the venue configuration. Implementations return
// domain.DefaultRoomConfig when nothing has been stored.
type RoomConfigReader interface {
	GetRoomConfig(ctx context.Context) (domain.RoomConfig, error)
}
