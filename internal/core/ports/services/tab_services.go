package services

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// TabReaderSvc defines read operations for tabs.
type TabReaderSvc interface {
	GetTab(ctx context.Context, tabID int) (*domain.Tab, error)
	// ListTabs returns all tabs, or only those in status when it is not empty.
	ListTabs(ctx context.Context, status domain.TabStatus) ([]domain.Tab, error)
}

// TabWriterSvc defines write operations for tabs.
type TabWriterSvc interface {
	// CreateTab opens a tab for the label, or returns the open tab that already
	// carries it. existed reports which of the two happened.
	CreateTab(ctx context.Context, customerLabel string) (tab *domain.Tab, existed bool, err error)
	CloseTab(ctx context.Context, tabID int) (*domain.Tab, error)
	// RemoveTab deletes the tab. Its ledger records stay on disk.
	RemoveTab(ctx context.Context, tabID int) error
}

// TabSvcFacade combines all tab operations.
type TabSvcFacade interface {
	TabReaderSvc
	TabWriterSvc
}
