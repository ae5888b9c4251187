package repositories

import "context"

// LedgerReader defines read operations on the ledger directory.
type LedgerReader interface {
	// ListRecordNames returns the name of every ledger record in the system.
	ListRecordNames(ctx context.Context) ([]string, error)

	// ReadRecord returns the body of one record.
	ReadRecord(ctx context.Context, name string) (string, error)
}

// LedgerWriter defines the single write operation on the ledger. Records are
// append-only: there is no update or delete.
type LedgerWriter interface {
	// WriteRecord stores a new record and fails with apperrors.ErrDuplicate if
	// a record with that name already exists.
	WriteRecord(ctx context.Context, name string, body string) error
}

// LedgerStoreFacade combines ledger reads and writes.
type LedgerStoreFacade interface {
	LedgerReader
	LedgerWriter
}
