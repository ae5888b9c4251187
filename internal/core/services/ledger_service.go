package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const ledgerReadConcurrency = 8

type ledgerService struct {
	BaseService
	products portsrepo.ProductReader
	ledger   portsrepo.LedgerReader
}

// NewLedgerService creates a new ledger reader service.
func NewLedgerService(products portsrepo.ProductReader, ledgerReader portsrepo.LedgerReader) portssvc.LedgerReaderSvc {
	return &ledgerService{products: products, ledger: ledgerReader}
}

var _ portssvc.LedgerReaderSvc = (*ledgerService)(nil)

func (s *ledgerService) LoadSalesForTab(ctx context.Context, tabID int) ([]domain.StructuredSale, error) {
	names, err := s.ledger.ListRecordNames(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger", slog.Int("tab_id", tabID))
		return nil, fmt.Errorf("%w: listing ledger: %v", apperrors.ErrStorage, err)
	}

	prefix := ledger.TabPrefix(tabID)
	var matching []string
	for _, name := range names {
		if strings.HasPrefix(path.Base(name), prefix) {
			matching = append(matching, name)
		}
	}

	results := make([]*domain.StructuredSale, len(matching))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ledgerReadConcurrency)
	for i, name := range matching {
		g.Go(func() error {
			sale, err := s.loadRecord(gctx, name)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.LogWarn(ctx, "Skipping unreadable ledger record",
					slog.String("record", name),
					slog.String("error", err.Error()))
				return nil
			}
			results[i] = sale
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sales := make([]domain.StructuredSale, 0, len(results))
	for _, sale := range results {
		if sale != nil {
			sales = append(sales, *sale)
		}
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].SequenceID < sales[j].SequenceID })
	return sales, nil
}

func (s *ledgerService) FindSale(ctx context.Context, tabID, sequenceID int) (*domain.StructuredSale, error) {
	sales, err := s.LoadSalesForTab(ctx, tabID)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].SequenceID == sequenceID {
			return &sales[i], nil
		}
	}
	return nil, fmt.Errorf("%w: sale %d on tab %d", apperrors.ErrNotFound, sequenceID, tabID)
}

// loadRecord reads and parses one record. Products that no longer resolve
// are replaced by a zero-price placeholder carrying the recorded description.
func (s *ledgerService) loadRecord(ctx context.Context, name string) (*domain.StructuredSale, error) {
	key, err := ledger.ParseRecordName(name)
	if err != nil {
		return nil, err
	}
	body, err := s.ledger.ReadRecord(ctx, name)
	if err != nil {
		return nil, err
	}
	lines, err := ledger.ParseBody(body)
	if err != nil {
		return nil, err
	}

	sale := &domain.StructuredSale{
		RecordName: path.Base(name),
		TabID:      key.TabID,
		OperatorID: key.OperatorID,
		SequenceID: key.SequenceID,
		Items:      make([]domain.SaleItem, 0, len(lines)),
		Total:      decimal.Zero,
	}
	cache := make(map[int]domain.Product)
	for _, line := range lines {
		product, ok := cache[line.ProductID]
		if !ok {
			found, err := s.products.FindProductByID(ctx, line.ProductID)
			switch {
			case err == nil:
				product = *found
			case errors.Is(err, apperrors.ErrNotFound):
				product = domain.PlaceholderProduct(line.ProductID, line.Description)
			default:
				return nil, err
			}
			cache[line.ProductID] = product
		}

		item := domain.SaleItem{
			ProductID:         line.ProductID,
			Description:       product.Description,
			Quantity:          line.Quantity,
			AttendantIDs:      line.AttendantIDs,
			UnitPrice:         product.Price,
			CommissionPerUnit: product.CommissionPerUnit,
		}
		sale.Items = append(sale.Items, item)
		sale.Total = sale.Total.Add(item.LineTotal())
	}
	return sale, nil
}
