package listrepo

import (
	"context"
	"fmt"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	"github.com/partstrack/parts_inventory_app/internal/utils/mapping"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// TransactionRepository implements portsrepo.TransactionRepositoryFacade
// over the list store. The ledger is append-only: this repository exposes
// no update or delete, mirroring the port.
type TransactionRepository struct {
	store liststore.Store
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(store liststore.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// SaveTransaction implements portsrepo.TransactionWriter.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	record, err := r.store.Create(ctx, liststore.CollectionTransactions, mapping.ToRecordTransaction(txn))
	if err != nil {
		return nil, fmt.Errorf("failed to append ledger row for part %s: %w", txn.PartID, err)
	}
	created := mapping.ToDomainTransaction(record)
	return &created, nil
}

// FindTransactionsByInvoiceID implements portsrepo.TransactionReader.
func (r *TransactionRepository) FindTransactionsByInvoiceID(ctx context.Context, invoiceID string, movementType *domain.MovementType) ([]domain.Transaction, error) {
	q := liststore.Query{
		Filter:  map[string]any{mapping.TxnInvoiceIDField: invoiceID},
		OrderBy: "created_at",
	}
	if movementType != nil {
		q.Filter[mapping.TxnMovementTypeField] = mapping.MovementLabel(*movementType)
	}

	records, err := r.store.List(ctx, liststore.CollectionTransactions, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger rows for invoice %s: %w", invoiceID, err)
	}
	return mapping.ToDomainTransactionSlice(records), nil
}

// ListTransactionsByPartID implements portsrepo.TransactionReader.
func (r *TransactionRepository) ListTransactionsByPartID(ctx context.Context, partID string, limit int) ([]domain.Transaction, error) {
	records, err := r.store.List(ctx, liststore.CollectionTransactions, liststore.Query{
		Filter:  map[string]any{mapping.TxnPartNumberField: partID},
		OrderBy: "created_at",
		Desc:    true,
		Top:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger rows for part %s: %w", partID, err)
	}
	return mapping.ToDomainTransactionSlice(records), nil
}
