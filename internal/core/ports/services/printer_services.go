package services

import "context"

// PrinterTransport delivers finished receipt markup to a printer.
type PrinterTransport interface {
	SendText(ctx context.Context, text string) error
}
