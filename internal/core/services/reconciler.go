package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerStep is one pending movement in a multi-step reconciliation.
type ledgerStep struct {
	index        int
	partID       string
	movementType domain.MovementType
	quantity     int
	unitPrice    decimal.Decimal
	notes        string
}

// applyLedgerSteps runs the steps strictly in order against the ledger.
//
// Failure policy: the first failure aborts the remaining steps. Rows
// already appended stay appended; the store cannot roll them back. The
// returned error is a PartialReconciliationError naming exactly which
// steps applied, which failed, and which were never attempted.
func (s *invoiceService) applyLedgerSteps(ctx context.Context, invoiceID string, steps []ledgerStep) ([]apperrors.LineItemOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	applied := make([]apperrors.LineItemOutcome, 0, len(steps))

	for i, step := range steps {
		if step.movementType == domain.MovementOut {
			s.warnOnShortfall(ctx, invoiceID, step)
		}

		txn, _, err := s.ledger.ApplyMovement(ctx, portssvc.ApplyMovementParams{
			PartID:       step.partID,
			MovementType: step.movementType,
			Quantity:     step.quantity,
			UnitPrice:    step.unitPrice,
			InvoiceID:    &invoiceID,
			Notes:        step.notes,
		})
		if err != nil {
			perr := &apperrors.PartialReconciliationError{
				InvoiceID: invoiceID,
				Applied:   applied,
				Failed: apperrors.LineItemOutcome{
					Index:      step.index,
					PartID:     step.partID,
					Quantity:   step.quantity,
					Err:        err,
					ErrMessage: err.Error(),
				},
			}
			for _, rest := range steps[i+1:] {
				perr.NotAttempted = append(perr.NotAttempted, apperrors.LineItemOutcome{
					Index:    rest.index,
					PartID:   rest.partID,
					Quantity: rest.quantity,
				})
			}
			logger.Error("reconciliation aborted mid-sequence",
				slog.String("invoice_id", invoiceID),
				slog.Int("applied", len(applied)),
				slog.Int("failed_index", step.index),
				slog.String("error", err.Error()),
			)
			return applied, perr
		}

		applied = append(applied, apperrors.LineItemOutcome{
			Index:         step.index,
			PartID:        step.partID,
			Quantity:      step.quantity,
			TransactionID: txn.TransactionID,
		})
	}
	return applied, nil
}

// warnOnShortfall logs when an outbound step asks for more stock than is
// on hand. Policy is warn-and-proceed: the sale is recorded, the count is
// clamped at zero by the ledger, and operations chase the discrepancy.
func (s *invoiceService) warnOnShortfall(ctx context.Context, invoiceID string, step ledgerStep) {
	logger := middleware.GetLoggerFromCtx(ctx)

	part, err := s.partRepo.FindPartByID(ctx, step.partID)
	if err != nil {
		// The ledger will report the missing part as the step failure.
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("shortfall pre-check skipped", slog.String("part_id", step.partID), slog.String("error", err.Error()))
		}
		return
	}
	if part.InventoryOnHand < step.quantity {
		logger.Warn("stock shortfall on finalize",
			slog.String("invoice_id", invoiceID),
			slog.String("part_id", step.partID),
			slog.Int("requested", step.quantity),
			slog.Int("on_hand", part.InventoryOnHand),
		)
	}
}
