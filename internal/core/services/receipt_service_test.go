package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/core/services"
	"github.com/barpos/comanda_backend/internal/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receiptFixture struct {
	sales      *MockLedgerReaderSvc
	tabs       *MockTabRepo
	attendants *MockCatalogRepo
	room       *MockRoomConfigRepo
	printer    *MockPrinter
	svc        interface {
		PreviewSale(ctx context.Context, tabID, sequenceID int) (string, error)
		ReprintSale(ctx context.Context, tabID, sequenceID int) error
		ReprintCommissions(ctx context.Context, tabID, sequenceID int) (int, error)
	}
}

func newReceiptFixture() *receiptFixture {
	f := &receiptFixture{
		sales:      new(MockLedgerReaderSvc),
		tabs:       new(MockTabRepo),
		attendants: new(MockCatalogRepo),
		room:       new(MockRoomConfigRepo),
		printer:    new(MockPrinter),
	}
	formatter := receipt.NewFormatter(receipt.WithClock(func() time.Time { return openedAt }))
	f.svc = services.NewReceiptService(f.sales, f.tabs, f.attendants, f.room, formatter, f.printer)

	sale := &domain.StructuredSale{
		TabID: 1, OperatorID: 1, SequenceID: 9,
		Items: []domain.SaleItem{
			{ProductID: 20, Description: "DOSE", Quantity: 3, AttendantIDs: []int{1, 2}, UnitPrice: dec("8"), CommissionPerUnit: dec("2")},
			{ProductID: 10, Description: "CERVEJA", Quantity: 1, AttendantIDs: []int{}, UnitPrice: dec("5")},
		},
		Total: dec("29"),
	}
	f.sales.On("FindSale", mock.Anything, 1, 9).Return(sale, nil)
	f.tabs.On("FindTabByID", mock.Anything, 1).Return(&domain.Tab{TabID: 1, CustomerLabel: "ANA"}, nil)
	f.room.On("GetRoomConfig", mock.Anything).Return(domain.RoomConfig{RoomName: "BAR"}, nil)
	return f
}

func TestPreviewSale(t *testing.T) {
	f := newReceiptFixture()

	text, err := f.svc.PreviewSale(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Contains(t, text, "TOTAL 29.00")
	assert.Contains(t, text, "SALE 9")
	f.printer.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything)
}

func TestReprintSale_PrinterFailure(t *testing.T) {
	f := newReceiptFixture()
	f.printer.On("SendText", mock.Anything, mock.Anything).Return(errors.New("no route to host"))

	err := f.svc.ReprintSale(context.Background(), 1, 9)
	assert.ErrorIs(t, err, apperrors.ErrPrintTransport)
}

func TestReprintSale_UnknownSale(t *testing.T) {
	f := newReceiptFixture()
	f.sales.On("FindSale", mock.Anything, 1, 404).Return(nil, apperrors.ErrNotFound)

	err := f.svc.ReprintSale(context.Background(), 1, 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReprintCommissions_UnionOfLineAttendants(t *testing.T) {
	f := newReceiptFixture()
	f.attendants.On("FindAttendantByID", mock.Anything, 1).Return(&domain.Attendant{AttendantID: 1, Nickname: "ANA"}, nil)
	f.attendants.On("FindAttendantByID", mock.Anything, 2).Return(&domain.Attendant{AttendantID: 2, Nickname: "BETO"}, nil)

	var printed []string
	f.printer.On("SendText", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		printed = append(printed, args.String(1))
	}).Return(nil)

	sent, err := f.svc.ReprintCommissions(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, printed, 2)
	assert.Contains(t, printed[0], "ANA")
	assert.Contains(t, printed[1], "BETO")
	for _, text := range printed {
		assert.True(t, strings.Contains(text, "COMMISSION 3.00"), text)
	}
}

func TestReprintCommissions_StopsAtFirstFailure(t *testing.T) {
	f := newReceiptFixture()
	f.attendants.On("FindAttendantByID", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	f.printer.On("SendText", mock.Anything, mock.Anything).Return(nil).Once()
	f.printer.On("SendText", mock.Anything, mock.Anything).Return(errors.New("paper out")).Once()

	sent, err := f.svc.ReprintCommissions(context.Background(), 1, 9)
	assert.ErrorIs(t, err, apperrors.ErrPrintTransport)
	assert.Equal(t, 1, sent)
}
