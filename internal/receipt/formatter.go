package receipt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/barpos/comanda_backend/internal/core/domain"
)

const (
	timestampLayout = "02/01/2006 15:04:05"
	feedLines       = 3
)

// Formatter renders receipts. Apart from the injected clock it is pure.
type Formatter struct {
	now   func() time.Time
	width int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the clock used for the receipt timestamp header.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

// WithWidth sets the paper width in columns.
func WithWidth(width int) Option {
	return func(f *Formatter) {
		if width > 0 {
			f.width = width
		}
	}
}

// NewFormatter creates a formatter for 32 column paper using the wall clock.
func NewFormatter(options ...Option) *Formatter {
	f := &Formatter{now: time.Now, width: DefaultWidth}
	for _, option := range options {
		option(f)
	}
	return f
}

// SaleReceipt renders the customer receipt for one posted sale.
func (f *Formatter) SaleReceipt(sale domain.StructuredSale, tab domain.Tab, sequenceID int, room domain.RoomConfig) string {
	doc := NewDocument(f.width)
	f.header(doc, room)

	doc.Left(Bold("CUSTOMER: " + cleanText(tab.CustomerLabel))).
		KeyValue("TAB "+strconv.Itoa(tab.TabID), "SALE "+strconv.Itoa(sequenceID)).
		Rule().
		KeyValue("QTY x PRICE", "TOTAL").
		Rule()

	for _, item := range sale.Items {
		doc.Left(Bold(cleanText(item.Description))).
			KeyValue(
				fmt.Sprintf("%d x %s", item.Quantity, money(item.UnitPrice)),
				"= "+money(item.LineTotal()),
			)
	}

	doc.Rule().
		KeyValue("ITEMS", strconv.Itoa(sale.TotalQuantity())).
		Left(Big(Bold("TOTAL " + money(sale.Total))))

	f.footer(doc, room)
	return doc.String()
}

// AttendantReceipt renders the commission voucher for one attendant.
func (f *Formatter) AttendantReceipt(alloc domain.CommissionAllocation, tab domain.Tab, sequenceID int, room domain.RoomConfig) string {
	doc := NewDocument(f.width)
	f.header(doc, room)

	doc.Center(Bold("COMMISSION VOUCHER")).
		Left(Bold(cleanText(alloc.Attendant.Nickname))).
		KeyValue("ATTENDANT", strconv.Itoa(alloc.Attendant.AttendantID)).
		KeyValue("TAB "+strconv.Itoa(tab.TabID), "SALE "+strconv.Itoa(sequenceID)).
		Rule().
		KeyValue("QTY x SHARE", "TOTAL").
		Rule()

	for _, c := range alloc.LineContributions {
		doc.Left(Bold(cleanText(c.Product.Description))).
			KeyValue(
				fmt.Sprintf("%d x %s", c.Quantity, money(c.PerAttendantAmount)),
				"= "+money(c.Total()),
			)
	}

	doc.Rule().
		Left(Big(Bold("COMMISSION " + money(alloc.TotalCommission))))

	f.footer(doc, room)
	return doc.String()
}

func (f *Formatter) header(doc *Document, room domain.RoomConfig) {
	doc.Center(Bold(f.now().Format(timestampLayout)))
	if name := cleanText(room.RoomName); name != "" {
		doc.Center(Big(name))
	}
	doc.Rule()
}

func (f *Formatter) footer(doc *Document, room domain.RoomConfig) {
	doc.Rule()
	if name := cleanText(room.RoomName); name != "" {
		doc.Center(name)
	}
	if word := cleanText(room.DailyWatchword); word != "" {
		doc.Center(Bold(word))
	}
	doc.Feed(feedLines)
}
