package services

import (
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/platform/config"
	"github.com/barpos/comanda_backend/internal/receipt"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	formatter *receipt.Formatter,
	printer portssvc.PrinterTransport,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Catalog = NewCatalogService(repos.CatalogRepo)
	container.Tab = NewTabService(repos.TabRepo, repos.RoomConfigRepo)
	container.Sale = NewSaleService(repos.CatalogRepo, repos.TabRepo, repos.LedgerStore, repos.RoomConfigRepo)
	container.Commission = NewCommissionService(repos.CatalogRepo)
	container.Ledger = NewLedgerService(repos.CatalogRepo, repos.LedgerStore)

	// Receipts read sales back through the ledger service so reprints match the record.
	container.Receipt = NewReceiptService(
		container.Ledger,
		repos.TabRepo,
		repos.CatalogRepo,
		repos.RoomConfigRepo,
		formatter,
		printer,
	)
	container.Checkout = NewCheckoutService(container.Sale, container.Commission, container.Receipt, repos.RoomConfigRepo)

	container.Auth = NewAuthService(cfg, repos.OperatorRepo)
	container.Operator = NewOperatorService(repos.OperatorRepo)

	return container
}
