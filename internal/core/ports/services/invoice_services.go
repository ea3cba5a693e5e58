package services

import (
	"context"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/partstrack/parts_inventory_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data.
type InvoiceReaderSvc interface {
	// GetInvoice retrieves an invoice by id.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices matching the listing parameters.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error)

	// ListInvoiceTransactions retrieves the ledger rows referencing an invoice.
	ListInvoiceTransactions(ctx context.Context, invoiceID string) ([]domain.Transaction, error)
}

// InvoiceLifecycleSvc defines the lifecycle transitions and their ledger effects.
type InvoiceLifecycleSvc interface {
	// CreateInvoice produces a Draft invoice; no ledger effect.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// CreateAndFinalizeInvoice creates the invoice and finalizes it in the
	// same call. Only available when direct finalize is enabled.
	CreateAndFinalizeInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// FinalizeInvoice materializes the line items as Out ledger rows and
	// moves the invoice from Draft to Finalized.
	FinalizeInvoice(ctx context.Context, invoiceID string, lineItems []dto.LineItemRequest) (*domain.Invoice, error)

	// VoidInvoice appends a VoidAdjustment row per Out row of the invoice,
	// restoring stock, and moves the invoice to Void.
	VoidInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// MarkInvoicePaid moves the invoice from Finalized to Paid. No ledger effect.
	MarkInvoicePaid(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceLifecycleSvc
}
