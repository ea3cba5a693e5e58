package repositories

import (
	"context"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceListFilter narrows an invoice listing.
type InvoiceListFilter struct {
	Status  *domain.InvoiceStatus
	BuyerID string
	Top     int
}

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its store-assigned id.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByNumber retrieves an invoice by its human-facing number.
	FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices matching the filter, newest first.
	ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and returns it with the
	// store-assigned id filled in.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoiceStatus patches the lifecycle status, and the cached
	// total when totalAmount is non-nil.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, totalAmount *decimal.Decimal, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
