package services

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// SalePosterSvc posts a sale to a tab and appends it to the ledger.
type SalePosterSvc interface {
	// PostSale fails with apperrors.ErrValidation before touching storage when
	// the tab or a product does not resolve, the cart is empty, or a quantity
	// is not positive. Storage faults are reported as apperrors.ErrStorage.
	PostSale(ctx context.Context, tabID, operatorID int, lines []domain.CartLine, attendantIDs []int) (*domain.SaleResult, error)
}

// SequenceSvc exposes the sequence id the next sale would receive.
type SequenceSvc interface {
	PeekNextSequenceID(ctx context.Context) (int, error)
}

// SaleSvcFacade combines the sale operations.
type SaleSvcFacade interface {
	SalePosterSvc
	SequenceSvc
}

// CommissionSvc resolves catalog data and splits commissions for a cart.
type CommissionSvc interface {
	CommissionsForSale(ctx context.Context, lines []domain.CartLine, attendantIDs []int) ([]domain.CommissionAllocation, error)
}

// LedgerReaderSvc reconstructs posted sales from the ledger.
type LedgerReaderSvc interface {
	// LoadSalesForTab returns the tab's sales in ascending sequence order.
	// Unreadable records are skipped; only a failed listing is an error.
	LoadSalesForTab(ctx context.Context, tabID int) ([]domain.StructuredSale, error)

	// FindSale returns apperrors.ErrNotFound when the tab has no sale with that sequence id.
	FindSale(ctx context.Context, tabID, sequenceID int) (*domain.StructuredSale, error)
}
