package printer

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"
)

// Printer is the interface for sending raw ESC/POS data to a thermal printer.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(ctx context.Context, data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected returns true if the printer connection is active.
	IsConnected() bool
}

// --- Device printer (bluetooth rfcomm or USB line printer device file) ---

const (
	// DefaultChunkSize keeps each write small enough for cheap bluetooth
	// serial bridges, which drop bytes when their buffer overflows.
	DefaultChunkSize  = 18
	DefaultChunkDelay = 100 * time.Millisecond
)

// OpenFunc opens the device for writing.
type OpenFunc func(path string) (io.WriteCloser, error)

func openDeviceFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}

type devicePrinter struct {
	mu         sync.Mutex
	path       string
	open       OpenFunc
	handle     io.WriteCloser
	chunkSize  int
	chunkDelay time.Duration
}

// DeviceOption configures a device printer.
type DeviceOption func(*devicePrinter)

// WithOpenFunc replaces the function used to open the device.
func WithOpenFunc(open OpenFunc) DeviceOption {
	return func(p *devicePrinter) {
		p.open = open
	}
}

// WithChunking sets the write size and the pause between writes.
func WithChunking(size int, delay time.Duration) DeviceOption {
	return func(p *devicePrinter) {
		if size > 0 {
			p.chunkSize = size
		}
		if delay >= 0 {
			p.chunkDelay = delay
		}
	}
}

// NewDevicePrinter creates a printer that writes to a device file such as
// /dev/rfcomm0 or /dev/usb/lp0. The handle is kept open between jobs and
// reopened once when a write fails.
func NewDevicePrinter(devicePath string, options ...DeviceOption) Printer {
	p := &devicePrinter{
		path:       devicePath,
		open:       openDeviceFile,
		chunkSize:  DefaultChunkSize,
		chunkDelay: DefaultChunkDelay,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *devicePrinter) Print(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.send(ctx, data)
	if err == nil || ctx.Err() != nil {
		return err
	}

	// the link may have dropped since the last job: reconnect and resend once
	p.closeHandle()
	if retryErr := p.send(ctx, data); retryErr != nil {
		return fmt.Errorf("printer: failed to write to device %s: %w (reconnect also failed: %v)", p.path, err, retryErr)
	}
	return nil
}

func (p *devicePrinter) send(ctx context.Context, data []byte) error {
	if p.handle == nil {
		h, err := p.open(p.path)
		if err != nil {
			return fmt.Errorf("printer: failed to open device %s: %w", p.path, err)
		}
		p.handle = h
	}

	for start := 0; start < len(data); start += p.chunkSize {
		end := start + p.chunkSize
		if end > len(data) {
			end = len(data)
		}
		if _, err := p.handle.Write(data[start:end]); err != nil {
			return err
		}
		if end < len(data) && p.chunkDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.chunkDelay):
			}
		}
	}
	return nil
}

func (p *devicePrinter) closeHandle() {
	if p.handle != nil {
		_ = p.handle.Close()
		p.handle = nil
	}
}

func (p *devicePrinter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeHandle()
	return nil
}

func (p *devicePrinter) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle != nil {
		return true
	}
	_, err := os.Stat(p.path)
	return err == nil
}

// --- Network Printer (dials TCP, e.g. 192.168.1.100:9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter creates a printer that connects via TCP.
// Address should include port, e.g. "192.168.1.100:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (p *networkPrinter) Print(ctx context.Context, data []byte) error {
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil // opens and closes per print job
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null Printer (no-op, for development/testing) ---

type nullPrinter struct{}

// NewNullPrinter creates a no-op printer for environments without hardware.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(ctx context.Context, data []byte) error {
	return nil
}

func (p *nullPrinter) Close() error {
	return nil
}

func (p *nullPrinter) IsConnected() bool {
	return false
}

// NewPrinterFromConfig creates the appropriate Printer based on type.
//
//	printerType: "device", "network", or "none"
//	devicePath: device file for serial/USB printers (e.g. "/dev/rfcomm0")
//	address: TCP address for network printers (e.g. "192.168.1.100:9100")
func NewPrinterFromConfig(printerType, devicePath, address string) (Printer, error) {
	switch printerType {
	case "device", "usb", "bluetooth":
		if devicePath == "" {
			return nil, fmt.Errorf("printer: device path is required for %s printer type", printerType)
		}
		return NewDevicePrinter(devicePath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use device, network, or none)", printerType)
	}
}
