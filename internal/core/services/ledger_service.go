package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
)

// ledgerService owns the reconciliation between the transaction ledger and
// each part's cached on-hand count.
type ledgerService struct {
	partRepo portsrepo.PartRepositoryFacade
	txnRepo  portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(partRepo portsrepo.PartRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.LedgerSvc {
	return &ledgerService{
		partRepo: partRepo,
		txnRepo:  txnRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// ApplyMovement translates one stock movement into an appended ledger row
// plus a patch of the part's cached count, floored at zero.
//
// Ordering matters: the ledger row is written first, then the part. The
// store has no cross-record transactions, so a part-patch failure after a
// successful append leaves the cached count behind the ledger. That
// divergence is surfaced to the caller and logged; it is repaired by
// re-reading and re-deriving, never by deleting the ledger row.
func (s *ledgerService) ApplyMovement(ctx context.Context, params portssvc.ApplyMovementParams) (*domain.Transaction, *domain.Part, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.Quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: movement quantity must be a positive integer, got %d", apperrors.ErrValidation, params.Quantity)
	}
	if !params.MovementType.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, params.MovementType)
	}

	part, err := s.partRepo.FindPartByID(ctx, params.PartID)
	if err != nil {
		return nil, nil, err
	}

	delta := params.MovementType.Delta(params.Quantity)
	newLevel := part.InventoryOnHand + delta
	if newLevel < 0 {
		// Oversell is a data-quality warning, not a hard error: the store
		// cannot abort sibling records, so the row is written and the
		// cached count is clamped at the floor.
		logger.Warn("inventory floor clamp",
			slog.String("part_id", params.PartID),
			slog.Int("on_hand", part.InventoryOnHand),
			slog.Int("delta", delta),
		)
		newLevel = 0
	}

	txn := domain.Transaction{
		PartID:       params.PartID,
		MovementType: params.MovementType,
		Quantity:     params.Quantity,
		InvoiceID:    params.InvoiceID,
		Notes:        params.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if params.MovementType == domain.MovementOut {
		txn.UnitPrice = params.UnitPrice
	} else {
		txn.UnitCost = params.UnitCost
	}

	written, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to append ledger row: %w", err)
	}

	if err := s.partRepo.UpdatePartInventory(ctx, params.PartID, newLevel); err != nil {
		logger.Error("ledger row written but part patch failed; cached count now trails the ledger",
			slog.String("part_id", params.PartID),
			slog.String("transaction_id", written.TransactionID),
			slog.Int("intended_on_hand", newLevel),
			slog.String("error", err.Error()),
		)
		return written, nil, fmt.Errorf("ledger row %s written but inventory patch for part %s failed: %w", written.TransactionID, params.PartID, err)
	}

	part.InventoryOnHand = newLevel
	logger.Debug("stock movement applied",
		slog.String("part_id", params.PartID),
		slog.String("movement_type", string(params.MovementType)),
		slog.Int("quantity", params.Quantity),
		slog.Int("on_hand", newLevel),
	)
	return written, part, nil
}
