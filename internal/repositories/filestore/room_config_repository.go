package filestore

import (
	"context"
	"fmt"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
)

// FileRoomConfigRepository reads the room settings document. The document is
// either an object or an array holding a single object.
type FileRoomConfigRepository struct {
	path string
}

func newFileRoomConfigRepository(path string) portsrepo.RoomConfigReader {
	return &FileRoomConfigRepository{path: path}
}

var _ portsrepo.RoomConfigReader = (*FileRoomConfigRepository)(nil)

func (r *FileRoomConfigRepository) GetRoomConfig(ctx context.Context) (domain.RoomConfig, error) {
	var raw any
	found, err := readJSON(r.path, &raw)
	if err != nil {
		return domain.RoomConfig{}, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if !found {
		return domain.DefaultRoomConfig(), nil
	}

	switch doc := raw.(type) {
	case map[string]any:
		return domain.RoomConfigFromMap(doc), nil
	case []any:
		if len(doc) == 0 {
			return domain.DefaultRoomConfig(), nil
		}
		if first, ok := doc[0].(map[string]any); ok {
			return domain.RoomConfigFromMap(first), nil
		}
	}
	return domain.RoomConfig{}, fmt.Errorf("%w: room config %s is neither an object nor a list of objects", apperrors.ErrStorage, r.path)
}
