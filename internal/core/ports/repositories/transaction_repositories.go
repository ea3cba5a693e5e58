package repositories

import (
	"context"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger data.
type TransactionReader interface {
	// FindTransactionsByInvoiceID retrieves ledger rows referencing an
	// invoice, optionally narrowed to one movement type.
	FindTransactionsByInvoiceID(ctx context.Context, invoiceID string, movementType *domain.MovementType) ([]domain.Transaction, error)

	// ListTransactionsByPartID retrieves ledger rows for a part, newest first.
	ListTransactionsByPartID(ctx context.Context, partID string, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines the only write the ledger permits: an append.
// There is deliberately no update or delete; corrections are offsetting rows.
type TransactionWriter interface {
	// SaveTransaction appends one ledger row and returns it with the
	// store-assigned id and timestamp filled in.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines the ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
