package listrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	"github.com/partstrack/parts_inventory_app/internal/utils/mapping"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
	"github.com/shopspring/decimal"
)

// InvoiceRepository implements portsrepo.InvoiceRepositoryFacade over the list store.
type InvoiceRepository struct {
	store liststore.Store
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(store liststore.Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

// FindInvoiceByID implements portsrepo.InvoiceReader.
func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	record, err := r.store.Get(ctx, liststore.CollectionInvoices, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(record)
	return &invoice, nil
}

// FindInvoiceByNumber implements portsrepo.InvoiceReader.
func (r *InvoiceRepository) FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	records, err := r.store.List(ctx, liststore.CollectionInvoices, liststore.Query{
		Filter: map[string]any{mapping.InvoiceNumberField: invoiceNumber},
		Top:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice number %s: %w", invoiceNumber, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("invoice number %s: %w", invoiceNumber, apperrors.ErrNotFound)
	}
	invoice := mapping.ToDomainInvoice(records[0])
	return &invoice, nil
}

// ListInvoices implements portsrepo.InvoiceReader.
func (r *InvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error) {
	q := liststore.Query{
		Filter:  map[string]any{},
		OrderBy: "created_at",
		Desc:    true,
		Top:     filter.Top,
	}
	if filter.Status != nil {
		q.Filter[mapping.InvoiceStatusField] = mapping.InvoiceStatusLabel(*filter.Status)
	}
	if filter.BuyerID != "" {
		q.Filter[mapping.InvoiceBuyerField] = filter.BuyerID
	}

	records, err := r.store.List(ctx, liststore.CollectionInvoices, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return mapping.ToDomainInvoiceSlice(records), nil
}

// SaveInvoice implements portsrepo.InvoiceWriter.
func (r *InvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	fields := mapping.ToRecordInvoice(invoice)
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	record, err := r.store.Create(ctx, liststore.CollectionInvoices, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceNumber, err)
	}
	created := mapping.ToDomainInvoice(record)
	return &created, nil
}

// UpdateInvoiceStatus implements portsrepo.InvoiceWriter.
func (r *InvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, totalAmount *decimal.Decimal, updatedAt time.Time) error {
	fields := liststore.Record{
		mapping.InvoiceStatusField: mapping.InvoiceStatusLabel(status),
		"updated_at":               updatedAt.UTC().Format(time.RFC3339),
	}
	if totalAmount != nil {
		fields[mapping.InvoiceTotalField] = totalAmount.String()
	}
	if _, err := r.store.Update(ctx, liststore.CollectionInvoices, invoiceID, fields); err != nil {
		return fmt.Errorf("failed to update status of invoice %s: %w", invoiceID, err)
	}
	return nil
}
