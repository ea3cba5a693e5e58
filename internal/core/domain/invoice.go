package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates where an invoice is in its lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceFinalized InvoiceStatus = "FINALIZED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceVoid      InvoiceStatus = "VOID"
)

// invoiceTransitions is the full set of legal status transitions.
// Paid and Void are terminal.
var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:     {InvoiceFinalized, InvoiceVoid},
	InvoiceFinalized: {InvoicePaid, InvoiceVoid},
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	for _, next := range invoiceTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves this status.
func (s InvoiceStatus) IsTerminal() bool {
	return len(invoiceTransitions[s]) == 0
}

// Invoice represents a customer invoice.
// Line items are not persisted on the invoice; they are materialized as
// Out transactions in the ledger when the invoice is finalized.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`     // Primary key (UUID)
	InvoiceNumber string          `json:"invoiceNumber"` // Unique human-facing key
	BuyerID       string          `json:"buyerID"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // Derived at finalize, cached
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes"`
	AuditFields
}

// LineItem is a transient part+quantity+price entry supplied when an
// invoice is finalized. It never exists as its own store record.
type LineItem struct {
	PartID    string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total returns quantity times unit price for one line.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
