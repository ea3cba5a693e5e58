package domain

import "github.com/shopspring/decimal"

// PartStatus marks whether a part is available for new invoicing.
type PartStatus string

const (
	PartActive   PartStatus = "ACTIVE"
	PartInactive PartStatus = "INACTIVE"
)

// Part represents an auto part in the catalog.
// InventoryOnHand is a cached count kept consistent with the transaction
// ledger; it is mutated only by ledger application, never directly by
// invoice handling code.
type Part struct {
	PartID          string          `json:"partID"` // Business key, human-assigned, unique
	Description     string          `json:"description"`
	Category        string          `json:"category"` // Free-text label
	InventoryOnHand int             `json:"inventoryOnHand"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Status          PartStatus      `json:"status"`
	AuditFields
}

// IsActive reports whether the part can appear on new invoices.
func (p *Part) IsActive() bool {
	return p.Status == PartActive
}
