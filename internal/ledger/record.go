// Package ledger encodes and decodes the on-disk ledger record format.
//
// A record is stored under a name of the form
//
//	{tabId:05d}-{operatorId:02d}-{sequenceId:05d}.cv
//
// and its body holds one line per cart line:
//
//	productId!description!quantity!attendantIds!
//
// where attendantIds is a comma-joined list, empty when the product carries no
// commission. Other tools parse both positionally, so the field order, the
// delimiters and the padding widths are fixed.
package ledger

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
)

const (
	// Extension is appended to every record name.
	Extension = ".cv"

	nameSeparator     = "-"
	fieldSeparator    = "!"
	attendantSep      = ","
	lineSeparator     = "\n"
	tabIDWidth        = 5
	operatorIDWidth   = 2
	sequenceIDWidth   = 5
	bodyFieldsPerLine = 4
)

// RecordName builds the canonical storage name for a key.
func RecordName(key domain.LedgerKey) string {
	return fmt.Sprintf("%0*d-%0*d-%0*d%s",
		tabIDWidth, key.TabID,
		operatorIDWidth, key.OperatorID,
		sequenceIDWidth, key.SequenceID,
		Extension)
}

// TabPrefix is the name prefix shared by every record of a tab.
func TabPrefix(tabID int) string {
	return fmt.Sprintf("%0*d%s", tabIDWidth, tabID, nameSeparator)
}

// ParseRecordName extracts the composite key from a record name.
// Any directory component is ignored.
func ParseRecordName(name string) (domain.LedgerKey, error) {
	base := strings.TrimSuffix(path.Base(name), Extension)
	fields := strings.Split(base, nameSeparator)
	if len(fields) != 3 {
		return domain.LedgerKey{}, fmt.Errorf("%w: record name %q has %d fields, want 3", apperrors.ErrParse, name, len(fields))
	}

	var ids [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return domain.LedgerKey{}, fmt.Errorf("%w: record name %q field %d is not a number", apperrors.ErrParse, name, i+1)
		}
		ids[i] = n
	}
	return domain.LedgerKey{TabID: ids[0], OperatorID: ids[1], SequenceID: ids[2]}, nil
}

// EncodeLine renders one body line. Attendants are written only when
// withAttendants is set; otherwise the field stays empty.
func EncodeLine(line domain.LedgerLine, withAttendants bool) string {
	var attendants string
	if withAttendants {
		attendants = JoinAttendants(line.AttendantIDs)
	}
	return strings.Join([]string{
		strconv.Itoa(line.ProductID),
		sanitizeField(line.Description),
		strconv.Itoa(line.Quantity),
		attendants,
	}, fieldSeparator) + fieldSeparator
}

// EncodeBody joins already encoded lines into a record body.
func EncodeBody(lines []string) string {
	return strings.Join(lines, lineSeparator)
}

// ParseBody decodes a record body. Blank lines are ignored; any other
// malformed line fails the whole body.
func ParseBody(body string) ([]domain.LedgerLine, error) {
	var lines []domain.LedgerLine
	for i, raw := range strings.Split(body, lineSeparator) {
		raw = strings.TrimRight(raw, "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := parseLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseLine(raw string) (domain.LedgerLine, error) {
	fields := strings.Split(raw, fieldSeparator)
	if len(fields) < bodyFieldsPerLine {
		return domain.LedgerLine{}, fmt.Errorf("%w: %d fields, want %d", apperrors.ErrParse, len(fields), bodyFieldsPerLine)
	}

	productID, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return domain.LedgerLine{}, fmt.Errorf("%w: product id %q", apperrors.ErrParse, fields[0])
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.LedgerLine{}, fmt.Errorf("%w: quantity %q", apperrors.ErrParse, fields[2])
	}
	attendants, err := SplitAttendants(fields[3])
	if err != nil {
		return domain.LedgerLine{}, err
	}

	return domain.LedgerLine{
		ProductID:    productID,
		Description:  fields[1],
		Quantity:     quantity,
		AttendantIDs: attendants,
	}, nil
}

// JoinAttendants comma-joins attendant ids.
func JoinAttendants(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, attendantSep)
}

// SplitAttendants parses a comma-joined attendant field. An empty field
// yields an empty, non-nil slice.
func SplitAttendants(field string) ([]int, error) {
	ids := []int{}
	field = strings.TrimSpace(field)
	// older tills wrote an unset attendant as "null" or "undefined"
	if field == "" || field == "null" || field == "undefined" {
		return ids, nil
	}
	for _, part := range strings.Split(field, attendantSep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: attendant id %q", apperrors.ErrParse, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// sanitizeField keeps a free-text value from breaking the positional format.
func sanitizeField(s string) string {
	return strings.NewReplacer(fieldSeparator, " ", lineSeparator, " ", "\r", " ").Replace(s)
}
