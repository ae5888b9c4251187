package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/barpos/comanda_backend/internal/models"
	"github.com/barpos/comanda_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// FileTabRepository keeps every tab in tabs.json. Writes rewrite the whole
// document under the write lock.
type FileTabRepository struct {
	mu   sync.RWMutex
	path string
}

func newFileTabRepository(dataDir string) portsrepo.TabRepositoryFacade {
	return &FileTabRepository{path: filepath.Join(dataDir, tabsFile)}
}

var _ portsrepo.TabRepositoryFacade = (*FileTabRepository)(nil)

func (r *FileTabRepository) load() ([]models.Tab, error) {
	var tabs []models.Tab
	if _, err := readJSON(r.path, &tabs); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return tabs, nil
}

func (r *FileTabRepository) store(tabs []models.Tab) error {
	sort.Slice(tabs, func(i, j int) bool { return tabs[i].TabID < tabs[j].TabID })
	if err := writeJSON(r.path, tabs); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return nil
}

// FindTabByID retrieves a tab by id.
func (r *FileTabRepository) FindTabByID(ctx context.Context, tabID int) (*domain.Tab, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tabs, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, t := range tabs {
		if t.TabID == tabID {
			tab := mapping.ToDomainTab(t)
			return &tab, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTabs returns every tab ordered by id.
func (r *FileTabRepository) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tabs, err := r.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(tabs, func(i, j int) bool { return tabs[i].TabID < tabs[j].TabID })
	return mapping.ToDomainTabSlice(tabs), nil
}

// SaveTab inserts the tab or replaces the stored tab with the same id.
func (r *FileTabRepository) SaveTab(ctx context.Context, tab domain.Tab) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tabs, err := r.load()
	if err != nil {
		return err
	}
	modelTab := mapping.ToModelTab(tab)
	replaced := false
	for i := range tabs {
		if tabs[i].TabID == modelTab.TabID {
			tabs[i] = modelTab
			replaced = true
			break
		}
	}
	if !replaced {
		tabs = append(tabs, modelTab)
	}
	return r.store(tabs)
}

// CloseTab zeroes the balance and marks the tab closed.
func (r *FileTabRepository) CloseTab(ctx context.Context, tabID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tabs, err := r.load()
	if err != nil {
		return err
	}
	for i := range tabs {
		if tabs[i].TabID == tabID {
			tabs[i].Balance = decimal.Zero
			tabs[i].Status = string(domain.TabClosed)
			return r.store(tabs)
		}
	}
	return apperrors.ErrNotFound
}

// AddToBalance raises the balance of one tab. Status and label are left as
// stored, so a tab closed in between stays closed.
func (r *FileTabRepository) AddToBalance(ctx context.Context, tabID int, amount decimal.Decimal) (*domain.Tab, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tabs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range tabs {
		if tabs[i].TabID != tabID {
			continue
		}
		tab := mapping.ToDomainTab(tabs[i])
		tab.AddSale(amount)
		tabs[i].Balance = tab.Balance
		if err := r.store(tabs); err != nil {
			return nil, err
		}
		return &tab, nil
	}
	return nil, apperrors.ErrNotFound
}

// RemoveTab drops the tab from tabs.json.
func (r *FileTabRepository) RemoveTab(ctx context.Context, tabID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tabs, err := r.load()
	if err != nil {
		return err
	}
	for i := range tabs {
		if tabs[i].TabID == tabID {
			return r.store(append(tabs[:i], tabs[i+1:]...))
		}
	}
	return apperrors.ErrNotFound
}
