package repositories

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TabReader defines read operations for tabs.
type TabReader interface {
	// FindTabByID returns apperrors.ErrNotFound when the id does not resolve.
	FindTabByID(ctx context.Context, tabID int) (*domain.Tab, error)

	// ListTabs returns every tab ordered by id.
	ListTabs(ctx context.Context) ([]domain.Tab, error)
}

// TabWriter defines write operations for tabs.
type TabWriter interface {
	// SaveTab inserts the tab or replaces the stored tab with the same id.
	SaveTab(ctx context.Context, tab domain.Tab) error

	// AddToBalance raises the stored balance by amount and leaves every other
	// field as stored. Returns apperrors.ErrNotFound when the id does not resolve.
	AddToBalance(ctx context.Context, tabID int, amount decimal.Decimal) (*domain.Tab, error)

	// CloseTab zeroes the balance and marks the tab closed.
	// Returns apperrors.ErrNotFound when the id does not resolve.
	CloseTab(ctx context.Context, tabID int) error

	// RemoveTab deletes the tab. Its ledger records are kept.
	// Returns apperrors.ErrNotFound when the id does not resolve.
	RemoveTab(ctx context.Context, tabID int) error
}

// TabRepositoryFacade combines all tab operations.
type TabRepositoryFacade interface {
	TabReader
	TabWriter
}
