package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/barpos/comanda_backend/internal/models"
	"github.com/barpos/comanda_backend/internal/utils/mapping"
)

type FileOperatorRepository struct {
	path string
}

func newFileOperatorRepository(dataDir string) portsrepo.OperatorReader {
	return &FileOperatorRepository{path: filepath.Join(dataDir, operatorsFile)}
}

var _ portsrepo.OperatorReader = (*FileOperatorRepository)(nil)

// FindOperatorByUsername matches the username without regard to case.
func (r *FileOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	var operators []models.Operator
	if _, err := readJSON(r.path, &operators); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	for _, o := range operators {
		if strings.EqualFold(o.Username, username) {
			operator := mapping.ToDomainOperator(o)
			return &operator, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListOperators returns every operator ordered by id.
func (r *FileOperatorRepository) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	var operators []models.Operator
	if _, err := readJSON(r.path, &operators); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	sort.Slice(operators, func(i, j int) bool { return operators[i].OperatorID < operators[j].OperatorID })
	return mapping.ToDomainOperatorSlice(operators), nil
}
