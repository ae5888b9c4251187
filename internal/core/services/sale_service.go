package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/ledger"
	"github.com/barpos/comanda_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// saleService posts sales. One instance must own a ledger directory: the mutex
// serialises balance update, directory scan and record write inside this
// process only.
type saleService struct {
	BaseService
	mu         sync.Mutex
	products   portsrepo.ProductReader
	tabs       portsrepo.TabRepositoryFacade
	ledger     portsrepo.LedgerStoreFacade
	roomConfig portsrepo.RoomConfigReader
}

// NewSaleService creates a new sale service.
func NewSaleService(
	products portsrepo.ProductReader,
	tabs portsrepo.TabRepositoryFacade,
	ledgerStore portsrepo.LedgerStoreFacade,
	roomConfig portsrepo.RoomConfigReader,
) portssvc.SaleSvcFacade {
	return &saleService{
		products:   products,
		tabs:       tabs,
		ledger:     ledgerStore,
		roomConfig: roomConfig,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) PostSale(ctx context.Context, tabID, operatorID int, lines []domain.CartLine, attendantIDs []int) (*domain.SaleResult, error) {
	logger := s.GetLogger(ctx).With(slog.Int("tab_id", tabID), slog.Int("operator_id", operatorID))

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}
	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %d has quantity %d, must be positive", apperrors.ErrValidation, i+1, line.Quantity)
		}
	}

	products, err := resolveProducts(ctx, s.products, lines)
	if err != nil {
		return nil, err
	}
	total, err := accounting.SaleTotal(lines, products)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	room, err := s.roomConfig.GetRoomConfig(ctx)
	if err != nil {
		logger.Error("Failed to load room config", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: loading room config: %v", apperrors.ErrStorage, err)
	}

	encoded := make([]string, len(lines))
	for i, line := range lines {
		product := products[line.ProductID]
		encoded[i] = ledger.EncodeLine(domain.LedgerLine{
			ProductID:    line.ProductID,
			Description:  product.Description,
			Quantity:     line.Quantity,
			AttendantIDs: line.AttendantIDs,
		}, product.HasCommission())
	}
	body := ledger.EncodeBody(encoded)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Only the balance is touched, so a concurrent close keeps its status.
	if _, err := s.tabs.AddToBalance(ctx, tabID, total); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: tab %d does not exist", apperrors.ErrValidation, tabID)
		}
		logger.Error("Failed to update tab balance", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: updating tab %d: %w", apperrors.ErrStorage, tabID, err)
	}

	// From here on the balance already includes this sale.
	names, err := s.ledger.ListRecordNames(ctx)
	if err != nil {
		s.logUnbalanced(logger, err, total, "")
		return nil, fmt.Errorf("%w: listing ledger: %w", apperrors.ErrStorage, err)
	}
	sequenceID := NextSequenceID(names, room.InitialSequenceNumber)
	name := ledger.RecordName(domain.LedgerKey{TabID: tabID, OperatorID: operatorID, SequenceID: sequenceID})

	if err := s.ledger.WriteRecord(ctx, name, body); err != nil {
		s.logUnbalanced(logger, err, total, name)
		return nil, fmt.Errorf("%w: writing ledger record %s: %w", apperrors.ErrStorage, name, err)
	}

	logger.Info("Sale posted",
		slog.Int("sequence_id", sequenceID),
		slog.String("record", name),
		slog.String("total", total.StringFixed(2)),
		slog.Int("lines", len(lines)),
		slog.Int("attendants", len(attendantIDs)))

	return &domain.SaleResult{SequenceID: sequenceID, TotalAmount: total, RecordName: name}, nil
}

// logUnbalanced reports a tab whose balance was raised without a ledger record.
// Nothing is rolled back; an operator has to reconcile it by hand.
func (s *saleService) logUnbalanced(logger *slog.Logger, err error, total decimal.Decimal, record string) {
	logger.Error("RECONCILE: tab balance updated but ledger record not written",
		slog.String("error", err.Error()),
		slog.String("amount", total.StringFixed(2)),
		slog.String("record", record))
}

func (s *saleService) PeekNextSequenceID(ctx context.Context) (int, error) {
	room, err := s.roomConfig.GetRoomConfig(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: loading room config: %v", apperrors.ErrStorage, err)
	}
	names, err := s.ledger.ListRecordNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: listing ledger: %v", apperrors.ErrStorage, err)
	}
	return NextSequenceID(names, room.InitialSequenceNumber), nil
}

// resolveProducts looks up every distinct product on the cart. A product that
// does not resolve is a validation error.
func resolveProducts(ctx context.Context, reader portsrepo.ProductReader, lines []domain.CartLine) (map[int]domain.Product, error) {
	products := make(map[int]domain.Product, len(lines))
	for _, line := range lines {
		if _, ok := products[line.ProductID]; ok {
			continue
		}
		product, err := reader.FindProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %d does not exist", apperrors.ErrValidation, line.ProductID)
			}
			return nil, fmt.Errorf("%w: loading product %d: %v", apperrors.ErrStorage, line.ProductID, err)
		}
		products[line.ProductID] = *product
	}
	return products, nil
}
