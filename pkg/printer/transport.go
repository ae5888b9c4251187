package printer

import "context"

// Transport sends receipt markup to a Printer.
type Transport struct {
	printer Printer
}

// NewTransport wraps p.
func NewTransport(p Printer) *Transport {
	return &Transport{printer: p}
}

// SendText encodes the markup and prints it.
func (t *Transport) SendText(ctx context.Context, text string) error {
	return t.printer.Print(ctx, EncodeMarkup(text))
}

// Close releases the underlying printer.
func (t *Transport) Close() error {
	return t.printer.Close()
}
