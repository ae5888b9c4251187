package pgsql

import (
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories. The ledger is
// never stored in the database; the caller supplies the record store.
func NewRepositoryProvider(dbPool *pgxpool.Pool, ledgerStore portsrepo.LedgerStoreFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CatalogRepo:    newPgxCatalogRepository(dbPool),
		TabRepo:        newPgxTabRepository(dbPool),
		OperatorRepo:   newPgxOperatorRepository(dbPool),
		LedgerStore:    ledgerStore,
		RoomConfigRepo: newPgxRoomConfigRepository(dbPool),
	}
}
