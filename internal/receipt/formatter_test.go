package receipt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/receipt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 14, 21, 5, 9, 0, time.UTC)

func newFormatter() *receipt.Formatter {
	return receipt.NewFormatter(receipt.WithClock(func() time.Time { return fixedNow }))
}

func pad(key, value string) string {
	return "[L]" + key + strings.Repeat(" ", 32-len(key)-len(value)) + value
}

func TestSaleReceipt_Layout(t *testing.T) {
	rule := "[L]" + strings.Repeat("-", 32)
	sale := domain.StructuredSale{
		SequenceID: 7,
		Items: []domain.SaleItem{
			{ProductID: 10, Description: "CERVEJA", Quantity: 2, UnitPrice: decimal.RequireFromString("5"), AttendantIDs: []int{}},
		},
		Total: decimal.RequireFromString("10"),
	}
	tab := domain.Tab{TabID: 1, CustomerLabel: "João"}
	room := domain.RoomConfig{RoomName: "Salão Azul", DailyWatchword: "Maçã"}

	got := newFormatter().SaleReceipt(sale, tab, 7, room)

	want := strings.Join([]string{
		"[C]<b>14/03/2026 21:05:09</b>",
		"[C]<font size='big'>Salao Azul</font>",
		rule,
		"[L]<b>CUSTOMER: Joao</b>",
		pad("TAB 1", "SALE 7"),
		rule,
		pad("QTY x PRICE", "TOTAL"),
		rule,
		"[L]<b>CERVEJA</b>",
		pad("2 x 5.00", "= 10.00"),
		rule,
		pad("ITEMS", "2"),
		"[L]<font size='big'><b>TOTAL 10.00</b></font>",
		rule,
		"[C]Salao Azul",
		"[C]<b>Maca</b>",
		"[L]",
		"[L]",
		"[L]",
	}, "\n") + "\n"

	assert.Equal(t, want, got)
}

func TestSaleReceipt_OptionalRoomFields(t *testing.T) {
	sale := domain.StructuredSale{Total: decimal.Zero}
	got := newFormatter().SaleReceipt(sale, domain.Tab{TabID: 3, CustomerLabel: "ANA"}, 1, domain.RoomConfig{})

	assert.NotContains(t, got, "[C]<font")
	assert.Contains(t, got, "TOTAL 0.00")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	// timestamp header is followed directly by the rule when no room name is set
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "[L]"+strings.Repeat("-", 32), lines[1])
}

func TestSaleReceipt_WithWidth(t *testing.T) {
	sale := domain.StructuredSale{Total: decimal.Zero}
	tab := domain.Tab{TabID: 3, CustomerLabel: "ANA"}

	wide := receipt.NewFormatter(receipt.WithWidth(48)).SaleReceipt(sale, tab, 1, domain.RoomConfig{})
	assert.Contains(t, wide, "[L]"+strings.Repeat("-", 48)+"\n")

	// a non-positive width keeps the default
	narrow := receipt.NewFormatter(receipt.WithWidth(0)).SaleReceipt(sale, tab, 1, domain.RoomConfig{})
	assert.Contains(t, narrow, "[L]"+strings.Repeat("-", 32)+"\n")
	assert.NotContains(t, narrow, strings.Repeat("-", 33))
}

func TestSaleReceipt_StripsAccentsEverywhere(t *testing.T) {
	sale := domain.StructuredSale{
		Items: []domain.SaleItem{
			{ProductID: 1, Description: "CAIPIRINHA LIMÃO", Quantity: 1, UnitPrice: decimal.RequireFromString("12.5")},
		},
		Total: decimal.RequireFromString("12.5"),
	}
	got := newFormatter().SaleReceipt(sale, domain.Tab{TabID: 9, CustomerLabel: "João"}, 4, domain.RoomConfig{RoomName: "Pátio"})

	assert.Contains(t, got, "Joao")
	assert.NotContains(t, got, "João")
	assert.Contains(t, got, "CAIPIRINHA LIMAO")
	assert.Contains(t, got, "Patio")
	assert.Contains(t, got, "1 x 12.50")
}

func TestAttendantReceipt_Layout(t *testing.T) {
	rule := "[L]" + strings.Repeat("-", 32)
	alloc := domain.CommissionAllocation{
		Attendant: domain.Attendant{AttendantID: 2, Nickname: "Zé"},
		LineContributions: []domain.CommissionContribution{
			{
				Product:            domain.Product{ProductID: 20, Description: "DOSE"},
				PerAttendantAmount: decimal.RequireFromString("1"),
				Quantity:           3,
			},
		},
		TotalCommission: decimal.RequireFromString("3"),
	}

	got := newFormatter().AttendantReceipt(alloc, domain.Tab{TabID: 12, CustomerLabel: "MESA 4"}, 5001, domain.RoomConfig{})

	want := strings.Join([]string{
		"[C]<b>14/03/2026 21:05:09</b>",
		rule,
		"[C]<b>COMMISSION VOUCHER</b>",
		"[L]<b>Ze</b>",
		pad("ATTENDANT", "2"),
		pad("TAB 12", "SALE 5001"),
		rule,
		pad("QTY x SHARE", "TOTAL"),
		rule,
		"[L]<b>DOSE</b>",
		pad("3 x 1.00", "= 3.00"),
		rule,
		"[L]<font size='big'><b>COMMISSION 3.00</b></font>",
		rule,
		"[L]",
		"[L]",
		"[L]",
	}, "\n") + "\n"

	assert.Equal(t, want, got)
}

func TestStripAccents(t *testing.T) {
	tests := []struct{ in, want string }{
		{in: "João", want: "Joao"},
		{in: "AÇAÍ", want: "ACAI"},
		{in: "crème brûlée", want: "creme brulee"},
		{in: "plain", want: "plain"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, receipt.StripAccents(tt.in), tt.in)
	}
}

func TestDocument_KeyValueIgnoresMarkupWidth(t *testing.T) {
	doc := receipt.NewDocument(10)
	doc.KeyValue("A", receipt.Bold("B"))
	assert.Equal(t, "[L]A"+strings.Repeat(" ", 8)+"<b>B</b>\n", doc.String())

	doc = receipt.NewDocument(4)
	doc.KeyValue("LONG", "VALUE")
	assert.Equal(t, "[L]LONG VALUE\n", doc.String())
}
