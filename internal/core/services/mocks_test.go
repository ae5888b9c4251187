package services_test

import (
	"context"

	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockCatalogRepo struct{ mock.Mock }

func (m *MockCatalogRepo) FindProductByID(ctx context.Context, productID int) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepo) FindAttendantByID(ctx context.Context, attendantID int) (*domain.Attendant, error) {
	args := m.Called(ctx, attendantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendant), args.Error(1)
}

func (m *MockCatalogRepo) ListActivePresentAttendants(ctx context.Context) ([]domain.Attendant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendant), args.Error(1)
}

var _ portsrepo.CatalogRepositoryFacade = (*MockCatalogRepo)(nil)

type MockTabRepo struct{ mock.Mock }

func (m *MockTabRepo) FindTabByID(ctx context.Context, tabID int) (*domain.Tab, error) {
	args := m.Called(ctx, tabID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tab), args.Error(1)
}

func (m *MockTabRepo) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tab), args.Error(1)
}

func (m *MockTabRepo) SaveTab(ctx context.Context, tab domain.Tab) error {
	return m.Called(ctx, tab).Error(0)
}

func (m *MockTabRepo) AddToBalance(ctx context.Context, tabID int, amount decimal.Decimal) (*domain.Tab, error) {
	args := m.Called(ctx, tabID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tab), args.Error(1)
}

func (m *MockTabRepo) CloseTab(ctx context.Context, tabID int) error {
	return m.Called(ctx, tabID).Error(0)
}

func (m *MockTabRepo) RemoveTab(ctx context.Context, tabID int) error {
	return m.Called(ctx, tabID).Error(0)
}

var _ portsrepo.TabRepositoryFacade = (*MockTabRepo)(nil)

type MockLedgerStore struct{ mock.Mock }

func (m *MockLedgerStore) ListRecordNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLedgerStore) ReadRecord(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockLedgerStore) WriteRecord(ctx context.Context, name string, body string) error {
	return m.Called(ctx, name, body).Error(0)
}

var _ portsrepo.LedgerStoreFacade = (*MockLedgerStore)(nil)

type MockRoomConfigRepo struct{ mock.Mock }

func (m *MockRoomConfigRepo) GetRoomConfig(ctx context.Context) (domain.RoomConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RoomConfig), args.Error(1)
}

var _ portsrepo.RoomConfigReader = (*MockRoomConfigRepo)(nil)

type MockOperatorRepo struct{ mock.Mock }

func (m *MockOperatorRepo) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepo) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

var _ portsrepo.OperatorReader = (*MockOperatorRepo)(nil)

// --- Service mocks ---

type MockPrinter struct{ mock.Mock }

func (m *MockPrinter) SendText(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

var _ portssvc.PrinterTransport = (*MockPrinter)(nil)

type MockSalePoster struct{ mock.Mock }

func (m *MockSalePoster) PostSale(ctx context.Context, tabID, operatorID int, lines []domain.CartLine, attendantIDs []int) (*domain.SaleResult, error) {
	args := m.Called(ctx, tabID, operatorID, lines, attendantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleResult), args.Error(1)
}

var _ portssvc.SalePosterSvc = (*MockSalePoster)(nil)

type MockCommissionSvc struct{ mock.Mock }

func (m *MockCommissionSvc) CommissionsForSale(ctx context.Context, lines []domain.CartLine, attendantIDs []int) ([]domain.CommissionAllocation, error) {
	args := m.Called(ctx, lines, attendantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionAllocation), args.Error(1)
}

var _ portssvc.CommissionSvc = (*MockCommissionSvc)(nil)

type MockReceiptPrinter struct{ mock.Mock }

func (m *MockReceiptPrinter) ReprintSale(ctx context.Context, tabID, sequenceID int) error {
	return m.Called(ctx, tabID, sequenceID).Error(0)
}

func (m *MockReceiptPrinter) ReprintCommissions(ctx context.Context, tabID, sequenceID int) (int, error) {
	args := m.Called(ctx, tabID, sequenceID)
	return args.Int(0), args.Error(1)
}

func (m *MockReceiptPrinter) PrintCommissionVouchers(ctx context.Context, tabID, sequenceID int, allocations []domain.CommissionAllocation) (int, error) {
	args := m.Called(ctx, tabID, sequenceID, allocations)
	return args.Int(0), args.Error(1)
}

var _ portssvc.ReceiptPrintSvc = (*MockReceiptPrinter)(nil)

type MockLedgerReaderSvc struct{ mock.Mock }

func (m *MockLedgerReaderSvc) LoadSalesForTab(ctx context.Context, tabID int) ([]domain.StructuredSale, error) {
	args := m.Called(ctx, tabID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StructuredSale), args.Error(1)
}

func (m *MockLedgerReaderSvc) FindSale(ctx context.Context, tabID, sequenceID int) (*domain.StructuredSale, error) {
	args := m.Called(ctx, tabID, sequenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StructuredSale), args.Error(1)
}

var _ portssvc.LedgerReaderSvc = (*MockLedgerReaderSvc)(nil)
