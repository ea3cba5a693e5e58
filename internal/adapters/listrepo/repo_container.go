package listrepo

import (
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// NewRepositoryProvider wires all list-store repositories over one Store.
// Pass a liststore.CachedStore to get read caching with write invalidation.
func NewRepositoryProvider(store liststore.Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartRepo:        NewPartRepository(store),
		BuyerRepo:       NewBuyerRepository(store),
		InvoiceRepo:     NewInvoiceRepository(store),
		TransactionRepo: NewTransactionRepository(store),
	}
}
