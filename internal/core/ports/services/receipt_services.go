package services

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

// ReceiptPreviewSvc renders receipts without sending them anywhere.
type ReceiptPreviewSvc interface {
	PreviewSale(ctx context.Context, tabID, sequenceID int) (string, error)
}

// ReceiptPrintSvc re-sends receipts for an already posted sale.
// Printer failures are reported as apperrors.ErrPrintTransport.
type ReceiptPrintSvc interface {
	ReprintSale(ctx context.Context, tabID, sequenceID int) error
	// ReprintCommissions prints one voucher per attendant credited on the sale
	// and returns how many were sent.
	ReprintCommissions(ctx context.Context, tabID, sequenceID int) (int, error)
	// PrintCommissionVouchers prints already computed allocations for a sale.
	PrintCommissionVouchers(ctx context.Context, tabID, sequenceID int, allocations []domain.CommissionAllocation) (int, error)
}

// ReceiptSvcFacade combines receipt preview and printing.
type ReceiptSvcFacade interface {
	ReceiptPreviewSvc
	ReceiptPrintSvc
}

// CheckoutSvc posts a sale and then prints its receipts.
type CheckoutSvc interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResult, error)
}
