package mapping

import (
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// Native field names of the Invoices collection.
const (
	InvoiceNumberField = "invoice_number"
	InvoiceBuyerField  = "buyer_id"
	InvoiceDateField   = "invoice_date"
	InvoiceTotalField  = "total_amount"
	InvoiceStatusField = "status"
	InvoiceNotesField  = "notes"
)

var invoiceStatusLabels = map[domain.InvoiceStatus]string{
	domain.InvoiceDraft:     "Draft",
	domain.InvoiceFinalized: "Finalized",
	domain.InvoicePaid:      "Paid",
	domain.InvoiceVoid:      "Void",
}

var invoiceStatusFromLabel = func() map[string]domain.InvoiceStatus {
	m := make(map[string]domain.InvoiceStatus, len(invoiceStatusLabels))
	for status, label := range invoiceStatusLabels {
		m[label] = status
	}
	return m
}()

// InvoiceStatusLabel returns the store's label for a domain invoice status.
func InvoiceStatusLabel(status domain.InvoiceStatus) string {
	return invoiceStatusLabels[status]
}

// ToDomainInvoice converts a raw Invoices record to a domain Invoice.
func ToDomainInvoice(r liststore.Record) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     r.ID(),
		InvoiceNumber: stringField(r, InvoiceNumberField),
		BuyerID:       stringField(r, InvoiceBuyerField),
		InvoiceDate:   timeField(r, InvoiceDateField),
		TotalAmount:   decimalField(r, InvoiceTotalField),
		Status:        invoiceStatusFromLabel[stringField(r, InvoiceStatusField)],
		Notes:         stringField(r, InvoiceNotesField),
		AuditFields: domain.AuditFields{
			CreatedAt:     timeField(r, "created_at"),
			LastUpdatedAt: timeField(r, "updated_at"),
		},
	}
}

// ToDomainInvoiceSlice converts a slice of raw records.
func ToDomainInvoiceSlice(rs []liststore.Record) []domain.Invoice {
	ds := make([]domain.Invoice, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainInvoice(r)
	}
	return ds
}

// ToRecordInvoice converts a domain Invoice to the Invoices record shape.
func ToRecordInvoice(inv domain.Invoice) liststore.Record {
	return liststore.Record{
		InvoiceNumberField: inv.InvoiceNumber,
		InvoiceBuyerField:  inv.BuyerID,
		InvoiceDateField:   inv.InvoiceDate.UTC().Format(time.RFC3339),
		InvoiceTotalField:  inv.TotalAmount.String(),
		InvoiceStatusField: invoiceStatusLabels[inv.Status],
		InvoiceNotesField:  inv.Notes,
	}
}
