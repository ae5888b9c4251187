package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/barpos/comanda_backend/internal/apperrors"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/barpos/comanda_backend/internal/ledger"
)

// tempSuffix marks a record still being written. Such files never carry the
// record extension, so listings skip them.
const tempSuffix = ".tmp"

// FileLedgerStore keeps one file per ledger record in a single directory.
// Records are created exclusively and never rewritten.
type FileLedgerStore struct {
	dir   string
	write func(w io.Writer, body string) (int, error)
}

// NewFileLedgerStore returns a ledger store rooted at dir. The directory is
// created on first write.
func NewFileLedgerStore(dir string) portsrepo.LedgerStoreFacade {
	return &FileLedgerStore{dir: dir, write: io.WriteString}
}

var _ portsrepo.LedgerStoreFacade = (*FileLedgerStore)(nil)

// ListRecordNames returns the base name of every record file. A missing
// directory is an empty ledger.
func (s *FileLedgerStore) ListRecordNames(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: failed to list ledger %s: %v", apperrors.ErrStorage, s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ledger.Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ReadRecord returns the body of one record.
func (s *FileLedgerStore) ReadRecord(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(s.recordPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: record %s", apperrors.ErrNotFound, name)
		}
		return "", fmt.Errorf("%w: failed to read record %s: %v", apperrors.ErrStorage, name, err)
	}
	return string(data), nil
}

// WriteRecord creates the record file. An existing file is never overwritten.
// The body is written to a temporary file that is linked under the record name
// only once complete, so a failed write leaves no record behind.
func (s *FileLedgerStore) WriteRecord(ctx context.Context, name string, body string) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("%w: failed to create ledger %s: %v", apperrors.ErrStorage, s.dir, err)
	}

	path := s.recordPath(name)
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".*"+tempSuffix)
	if err != nil {
		return fmt.Errorf("%w: failed to create record %s: %v", apperrors.ErrStorage, name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := s.write(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to write record %s: %v", apperrors.ErrStorage, name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to sync record %s: %v", apperrors.ErrStorage, name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close record %s: %v", apperrors.ErrStorage, name, err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("%w: failed to set mode of record %s: %v", apperrors.ErrStorage, name, err)
	}

	// Link fails when the target exists, which keeps records create-once.
	if err := os.Link(tmp.Name(), path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: record %s", apperrors.ErrDuplicate, name)
		}
		return fmt.Errorf("%w: failed to link record %s: %v", apperrors.ErrStorage, name, err)
	}
	return nil
}

// recordPath confines name to the ledger directory.
func (s *FileLedgerStore) recordPath(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
