package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/receipt"
	"github.com/barpos/comanda_backend/internal/utils/accounting"
)

type receiptService struct {
	BaseService
	sales      portssvc.LedgerReaderSvc
	tabs       portsrepo.TabReader
	attendants portsrepo.AttendantReader
	roomConfig portsrepo.RoomConfigReader
	formatter  *receipt.Formatter
	printer    portssvc.PrinterTransport
}

// NewReceiptService creates a new receipt service. Receipts are rebuilt from
// the ledger, so a reprint shows exactly what was recorded.
func NewReceiptService(
	sales portssvc.LedgerReaderSvc,
	tabs portsrepo.TabReader,
	attendants portsrepo.AttendantReader,
	roomConfig portsrepo.RoomConfigReader,
	formatter *receipt.Formatter,
	printer portssvc.PrinterTransport,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		sales:      sales,
		tabs:       tabs,
		attendants: attendants,
		roomConfig: roomConfig,
		formatter:  formatter,
		printer:    printer,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) PreviewSale(ctx context.Context, tabID, sequenceID int) (string, error) {
	sale, tab, room, err := s.load(ctx, tabID, sequenceID)
	if err != nil {
		return "", err
	}
	return s.formatter.SaleReceipt(*sale, *tab, sequenceID, room), nil
}

func (s *receiptService) ReprintSale(ctx context.Context, tabID, sequenceID int) error {
	text, err := s.PreviewSale(ctx, tabID, sequenceID)
	if err != nil {
		return err
	}
	if err := s.printer.SendText(ctx, text); err != nil {
		s.LogError(ctx, err, "Failed to print sale receipt",
			slog.Int("tab_id", tabID), slog.Int("sequence_id", sequenceID))
		return fmt.Errorf("%w: %v", apperrors.ErrPrintTransport, err)
	}
	s.LogInfo(ctx, "Sale receipt printed", slog.Int("tab_id", tabID), slog.Int("sequence_id", sequenceID))
	return nil
}

// ReprintCommissions credits every attendant named on the recorded lines.
func (s *receiptService) ReprintCommissions(ctx context.Context, tabID, sequenceID int) (int, error) {
	sale, _, _, err := s.load(ctx, tabID, sequenceID)
	if err != nil {
		return 0, err
	}

	lines := make([]domain.CartLine, len(sale.Items))
	products := make(map[int]domain.Product, len(sale.Items))
	var selected []int
	seen := make(map[int]bool)
	for i, item := range sale.Items {
		lines[i] = item.CartLine()
		products[item.ProductID] = item.Product()
		for _, id := range item.AttendantIDs {
			if !seen[id] {
				seen[id] = true
				selected = append(selected, id)
			}
		}
	}

	attendants := make(map[int]domain.Attendant, len(selected))
	for _, id := range selected {
		attendant, err := s.attendants.FindAttendantByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return 0, fmt.Errorf("%w: loading attendant %d: %v", apperrors.ErrStorage, id, err)
		}
		attendants[id] = *attendant
	}

	allocations := accounting.AllocateCommissions(lines, selected, products, attendants)
	return s.PrintCommissionVouchers(ctx, tabID, sequenceID, allocations)
}

// PrintCommissionVouchers stops at the first printer failure and reports how
// many vouchers went out before it.
func (s *receiptService) PrintCommissionVouchers(ctx context.Context, tabID, sequenceID int, allocations []domain.CommissionAllocation) (int, error) {
	if len(allocations) == 0 {
		return 0, nil
	}
	tab, err := s.findTab(ctx, tabID)
	if err != nil {
		return 0, err
	}
	room, err := s.roomConfig.GetRoomConfig(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: loading room config: %v", apperrors.ErrStorage, err)
	}

	for i, alloc := range allocations {
		text := s.formatter.AttendantReceipt(alloc, *tab, sequenceID, room)
		if err := s.printer.SendText(ctx, text); err != nil {
			s.LogError(ctx, err, "Failed to print commission voucher",
				slog.Int("tab_id", tabID),
				slog.Int("sequence_id", sequenceID),
				slog.Int("attendant_id", alloc.Attendant.AttendantID))
			return i, fmt.Errorf("%w: %v", apperrors.ErrPrintTransport, err)
		}
	}
	return len(allocations), nil
}

func (s *receiptService) load(ctx context.Context, tabID, sequenceID int) (*domain.StructuredSale, *domain.Tab, domain.RoomConfig, error) {
	sale, err := s.sales.FindSale(ctx, tabID, sequenceID)
	if err != nil {
		return nil, nil, domain.RoomConfig{}, err
	}
	tab, err := s.findTab(ctx, tabID)
	if err != nil {
		return nil, nil, domain.RoomConfig{}, err
	}
	room, err := s.roomConfig.GetRoomConfig(ctx)
	if err != nil {
		return nil, nil, domain.RoomConfig{}, fmt.Errorf("%w: loading room config: %v", apperrors.ErrStorage, err)
	}
	return sale, tab, room, nil
}

func (s *receiptService) findTab(ctx context.Context, tabID int) (*domain.Tab, error) {
	tab, err := s.tabs.FindTabByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: loading tab %d: %v", apperrors.ErrStorage, tabID, err)
	}
	return tab, nil
}
