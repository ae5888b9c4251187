package filestore

import (
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the file-backed repositories.
func NewRepositoryProvider(dataDir, ledgerDir, roomConfigFile string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CatalogRepo:    newFileCatalogRepository(dataDir),
		TabRepo:        newFileTabRepository(dataDir),
		OperatorRepo:   newFileOperatorRepository(dataDir),
		LedgerStore:    NewFileLedgerStore(ledgerDir),
		RoomConfigRepo: newFileRoomConfigRepository(roomConfigFile),
	}
}
