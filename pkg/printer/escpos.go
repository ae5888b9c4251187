package printer

import (
	"bytes"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width + double height
)

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf bytes.Buffer
}

// NewDocument creates a new ESC/POS document starting with the init command.
func NewDocument() *Document {
	d := &Document{}
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// SetAlign sets text alignment: AlignLeft or AlignCenter.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size. Use FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Write appends raw text.
func (d *Document) Write(s string) *Document {
	d.buf.WriteString(s)
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

var markupTags = []struct {
	tag   string
	apply func(*Document)
}{
	{"<b>", func(d *Document) { d.SetBold(true) }},
	{"</b>", func(d *Document) { d.SetBold(false) }},
	{"<font size='big'>", func(d *Document) { d.SetFontSize(FontDouble) }},
	{"</font>", func(d *Document) { d.SetFontSize(FontNormal) }},
}

// EncodeMarkup translates receipt markup ([L], [C], <b>, <font size='big'>)
// into ESC/POS commands. Unknown text passes through unchanged.
func EncodeMarkup(text string) []byte {
	d := NewDocument()
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "[C]"):
			d.SetAlign(AlignCenter)
			line = line[len("[C]"):]
		case strings.HasPrefix(line, "[L]"):
			d.SetAlign(AlignLeft)
			line = line[len("[L]"):]
		}
		encodeSpans(d, line)
		d.LineFeed()
	}
	return d.Bytes()
}

func encodeSpans(d *Document, line string) {
	for line != "" {
		next, idx := -1, len(line)
		for i, m := range markupTags {
			if j := strings.Index(line, m.tag); j >= 0 && j < idx {
				next, idx = i, j
			}
		}
		d.Write(line[:idx])
		if next < 0 {
			return
		}
		markupTags[next].apply(d)
		line = line[idx+len(markupTags[next].tag):]
	}
}
