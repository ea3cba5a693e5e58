package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a stock movement recorded in the ledger.
type MovementType string

const (
	// MovementIn is stock received into inventory (purchase receiving).
	MovementIn MovementType = "IN_RECEIVED"
	// MovementOut is stock sold out of inventory against an invoice.
	MovementOut MovementType = "OUT_SOLD"
	// MovementAdjustment is a manual positive stock correction.
	MovementAdjustment MovementType = "ADJUSTMENT"
	// MovementVoidAdjustment restores stock consumed by a voided invoice.
	MovementVoidAdjustment MovementType = "VOID_ADJUSTMENT"
)

// IsValid returns true if the movement type is one of the known types.
func (m MovementType) IsValid() bool {
	switch m {
	case MovementIn, MovementOut, MovementAdjustment, MovementVoidAdjustment:
		return true
	}
	return false
}

// IsInbound reports whether the movement increases on-hand inventory.
func (m MovementType) IsInbound() bool {
	return m != MovementOut
}

// Delta returns the signed inventory change for a positive quantity:
// positive for In/Adjustment/VoidAdjustment, negative for Out.
func (m MovementType) Delta(quantity int) int {
	if m == MovementOut {
		return -quantity
	}
	return quantity
}

// Transaction is one immutable entry in the stock-movement ledger.
// Ledger rows are never updated or deleted; corrections are made by
// appending offsetting rows (see MovementVoidAdjustment).
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Store-assigned (UUID)
	PartID        string          `json:"partID"`        // Reference to Part business key
	MovementType  MovementType    `json:"movementType"`
	Quantity      int             `json:"quantity"`            // Always positive; sign implied by MovementType
	UnitCost      decimal.Decimal `json:"unitCost"`            // Set for inbound movements only
	UnitPrice     decimal.Decimal `json:"unitPrice"`           // Set for outbound movements only
	InvoiceID     *string         `json:"invoiceID,omitempty"` // Back-reference, Out and VoidAdjustment rows only
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SignedQuantity is the inventory delta this row contributed when applied.
func (t *Transaction) SignedQuantity() int {
	return t.MovementType.Delta(t.Quantity)
}
