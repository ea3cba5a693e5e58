package services

import (
	"context"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyMovementParams describes one stock movement to record.
type ApplyMovementParams struct {
	PartID       string
	MovementType domain.MovementType
	Quantity     int
	// UnitCost applies to inbound movements, UnitPrice to outbound;
	// the ledger records whichever matches the movement direction.
	UnitCost  decimal.Decimal
	UnitPrice decimal.Decimal
	// InvoiceID links Out and VoidAdjustment rows back to their invoice.
	InvoiceID *string
	Notes     string
}

// LedgerSvc translates one stock movement into an immutable ledger row
// plus a patch of the part's cached on-hand count.
type LedgerSvc interface {
	// ApplyMovement appends the ledger row, then patches the part.
	// Returns the written transaction and the part at its new level.
	ApplyMovement(ctx context.Context, params ApplyMovementParams) (*domain.Transaction, *domain.Part, error)
}
