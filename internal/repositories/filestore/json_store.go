// Package filestore keeps the catalog, tabs, operators and room settings in
// JSON documents under the data directory, and the sale ledger as one file per
// record. It is the default storage backend.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	productsFile   = "products.json"
	attendantsFile = "attendants.json"
	tabsFile       = "tabs.json"
	operatorsFile  = "operators.json"

	backupSuffix = ".bak"
	filePerm     = 0o644
	dirPerm      = 0o755
)

// readJSON decodes the document at path into v. A missing file leaves v
// untouched and reports found=false.
func readJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

// writeJSON replaces the document at path. The previous version is copied to
// path.bak first and restored if the write fails; the backup is removed once
// the new document is in place.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	backup := path + backupSuffix
	hadPrevious, err := copyFile(path, backup)
	if err != nil {
		return fmt.Errorf("failed to back up %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		if hadPrevious {
			if _, restoreErr := copyFile(backup, path); restoreErr != nil {
				return fmt.Errorf("failed to write %s (%v) and to restore backup: %w", path, err, restoreErr)
			}
		}
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if hadPrevious {
		// a stale backup is harmless; the next write replaces it
		_ = os.Remove(backup)
	}
	return nil
}

// copyFile copies src to dst. A missing src is not an error and reports false.
func copyFile(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, err
	}
	return true, out.Close()
}
