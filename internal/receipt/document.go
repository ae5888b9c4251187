// Package receipt renders sales and commission vouchers into the printer
// markup understood by the till's thermal printer bridge.
//
// The markup is line oriented. Every line starts with an alignment tag ([L]
// or [C]) and may contain <b>..</b> and <font size='big'>..</font> spans.
// The tags are passed through verbatim; the transport interprets them.
package receipt

import (
	"strings"
	"unicode/utf8"
)

// Markup tokens.
const (
	AlignLeft   = "[L]"
	AlignCenter = "[C]"
	BoldOn      = "<b>"
	BoldOff     = "</b>"
	BigOn       = "<font size='big'>"
	BigOff      = "</font>"

	// DefaultWidth is the column count of 58mm paper.
	DefaultWidth = 32
)

// Bold wraps s in bold tags.
func Bold(s string) string { return BoldOn + s + BoldOff }

// Big wraps s in double-size tags.
func Big(s string) string { return BigOn + s + BigOff }

// Document accumulates markup lines.
type Document struct {
	buf   strings.Builder
	width int
}

// NewDocument creates an empty document for the given column width.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Document{width: width}
}

// Left writes a left-aligned line.
func (d *Document) Left(s string) *Document {
	return d.line(AlignLeft, s)
}

// Center writes a centred line.
func (d *Document) Center(s string) *Document {
	return d.line(AlignCenter, s)
}

// Rule writes a full-width separator.
func (d *Document) Rule() *Document {
	return d.Left(strings.Repeat("-", d.width))
}

// KeyValue writes key on the left and value flush right. Only visible
// characters count towards the width, so values may carry markup.
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - visibleLen(key) - visibleLen(value)
	if spaces < 1 {
		spaces = 1
	}
	return d.Left(key + strings.Repeat(" ", spaces) + value)
}

// Feed writes n empty lines so the paper clears the tear bar.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.Left("")
	}
	return d
}

// String returns the accumulated markup.
func (d *Document) String() string {
	return d.buf.String()
}

func (d *Document) line(align, s string) *Document {
	d.buf.WriteString(align)
	d.buf.WriteString(s)
	d.buf.WriteByte('\n')
	return d
}

var markupStripper = strings.NewReplacer(BoldOn, "", BoldOff, "", BigOn, "", BigOff, "")

func visibleLen(s string) int {
	return utf8.RuneCountInString(markupStripper.Replace(s))
}
