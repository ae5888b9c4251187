package services

import "github.com/barpos/comanda_backend/internal/ledger"

// NextSequenceID derives the next sale id from the names of every ledger
// record in the system. The result is max+1, raised to floor when a floor is
// configured. With no parsable names it is floor, or 1 when floor is not set.
// Names that do not parse are ignored.
//
// The value is a pure function of what is on disk, so it survives restarts
// without a counter file. Two callers scanning the same directory at the same
// time get the same id; callers must serialise scan and write.
func NextSequenceID(existingRecordNames []string, floor int) int {
	highest, found := 0, false
	for _, name := range existingRecordNames {
		key, err := ledger.ParseRecordName(name)
		if err != nil {
			continue
		}
		if !found || key.SequenceID > highest {
			highest, found = key.SequenceID, true
		}
	}

	if !found {
		if floor <= 0 {
			return 1
		}
		return floor
	}

	next := highest + 1
	if floor > 0 && floor > next {
		return floor
	}
	return next
}
