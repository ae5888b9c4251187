package services

import (
	"context"
	"log/slog"

	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
)

// checkoutService posts a sale and then, as a separate best-effort step,
// prints the customer receipt and the commission vouchers.
type checkoutService struct {
	BaseService
	sales       portssvc.SalePosterSvc
	commissions portssvc.CommissionSvc
	receipts    portssvc.ReceiptPrintSvc
	roomConfig  portsrepo.RoomConfigReader
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	sales portssvc.SalePosterSvc,
	commissions portssvc.CommissionSvc,
	receipts portssvc.ReceiptPrintSvc,
	roomConfig portsrepo.RoomConfigReader,
) portssvc.CheckoutSvc {
	return &checkoutService{
		sales:       sales,
		commissions: commissions,
		receipts:    receipts,
		roomConfig:  roomConfig,
	}
}

var _ portssvc.CheckoutSvc = (*checkoutService)(nil)

// Checkout only fails when posting fails. Once the sale is recorded every
// later problem lands in the result's PrintError and can be retried through
// the reprint operations.
func (s *checkoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	sale, err := s.sales.PostSale(ctx, req.TabID, req.OperatorID, req.Lines, req.AttendantIDs)
	if err != nil {
		return nil, err
	}
	result := &domain.CheckoutResult{Sale: *sale}
	logger := s.GetLogger(ctx).With(slog.Int("tab_id", req.TabID), slog.Int("sequence_id", sale.SequenceID))

	room, err := s.roomConfig.GetRoomConfig(ctx)
	if err != nil {
		logger.Warn("Sale posted but room config unavailable, skipping print", slog.String("error", err.Error()))
		result.PrintError = err.Error()
		return result, nil
	}

	if room.PrintEnabled {
		if err := s.receipts.ReprintSale(ctx, req.TabID, sale.SequenceID); err != nil {
			logger.Warn("Sale posted but receipt not printed", slog.String("error", err.Error()))
			result.PrintError = err.Error()
		} else {
			result.Printed = true
		}
	}

	if !room.CommissionEnabled {
		return result, nil
	}
	allocations, err := s.commissions.CommissionsForSale(ctx, req.Lines, req.AttendantIDs)
	if err != nil {
		logger.Warn("Sale posted but commissions could not be computed", slog.String("error", err.Error()))
		if result.PrintError == "" {
			result.PrintError = err.Error()
		}
		return result, nil
	}
	result.Commissions = allocations

	if room.PrintEnabled {
		printed, err := s.receipts.PrintCommissionVouchers(ctx, req.TabID, sale.SequenceID, allocations)
		result.CommissionReceipts = printed
		if err != nil && result.PrintError == "" {
			result.PrintError = err.Error()
		}
	}
	return result, nil
}
