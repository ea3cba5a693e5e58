package services

import (
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger comes first; part and invoice services both move stock
	// through it.
	container.Ledger = NewLedgerService(repos.PartRepo, repos.TransactionRepo)

	container.Part = NewPartService(repos.PartRepo, repos.TransactionRepo, container.Ledger)
	container.Buyer = NewBuyerService(repos.BuyerRepo)
	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		repos.BuyerRepo,
		repos.PartRepo,
		repos.TransactionRepo,
		container.Ledger,
		cfg.AllowDirectFinalize,
	)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.LedgerSvc        = (*ledgerService)(nil)
	_ portssvc.PartSvcFacade    = (*partService)(nil)
	_ portssvc.BuyerSvcFacade   = (*buyerService)(nil)
	_ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)
)
