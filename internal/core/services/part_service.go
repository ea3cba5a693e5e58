package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
)

// partService provides catalog operations plus the part-side stock
// movements (receipts and adjustments), which go through the ledger.
type partService struct {
	partRepo portsrepo.PartRepositoryFacade
	txnRepo  portsrepo.TransactionRepositoryFacade
	ledger   portssvc.LedgerSvc
}

// NewPartService creates a new PartService.
func NewPartService(partRepo portsrepo.PartRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, ledger portssvc.LedgerSvc) portssvc.PartSvcFacade {
	return &partService{
		partRepo: partRepo,
		txnRepo:  txnRepo,
		ledger:   ledger,
	}
}

var _ portssvc.PartSvcFacade = (*partService)(nil)

// CreatePart persists a new part with its starting inventory.
func (s *partService) CreatePart(ctx context.Context, req dto.CreatePartRequest) (*domain.Part, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.partRepo.FindPartByID(ctx, req.PartID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check part uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("part %s: %w", req.PartID, apperrors.ErrDuplicate)
	}

	now := time.Now().UTC()
	part := domain.Part{
		PartID:          req.PartID,
		Description:     req.Description,
		Category:        req.Category,
		InventoryOnHand: req.InventoryOnHand,
		UnitCost:        req.UnitCost,
		UnitPrice:       req.UnitPrice,
		Status:          domain.PartActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.partRepo.SavePart(ctx, part); err != nil {
		return nil, fmt.Errorf("failed to save part: %w", err)
	}

	logger.Info("part created", slog.String("part_id", part.PartID), slog.Int("starting_inventory", part.InventoryOnHand))
	return &part, nil
}

// UpdatePart updates descriptive fields. The on-hand count is deliberately
// not editable here; it only moves through ledger application.
func (s *partService) UpdatePart(ctx context.Context, partID string, req dto.UpdatePartRequest) (*domain.Part, error) {
	part, err := s.partRepo.FindPartByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Description != nil {
		part.Description = *req.Description
		updated = true
	}
	if req.Category != nil {
		part.Category = *req.Category
		updated = true
	}
	if req.UnitCost != nil {
		part.UnitCost = *req.UnitCost
		updated = true
	}
	if req.UnitPrice != nil {
		part.UnitPrice = *req.UnitPrice
		updated = true
	}
	if req.Status != nil {
		if *req.Status != domain.PartActive && *req.Status != domain.PartInactive {
			return nil, fmt.Errorf("%w: unknown part status %q", apperrors.ErrValidation, *req.Status)
		}
		part.Status = *req.Status
		updated = true
	}
	if !updated {
		return part, nil
	}

	part.LastUpdatedAt = time.Now().UTC()
	if err := s.partRepo.UpdatePartDetails(ctx, *part); err != nil {
		return nil, fmt.Errorf("failed to update part %s: %w", partID, err)
	}
	return part, nil
}

// GetPart implements portssvc.PartReaderSvc.
func (s *partService) GetPart(ctx context.Context, partID string) (*domain.Part, error) {
	return s.partRepo.FindPartByID(ctx, partID)
}

// ListParts implements portssvc.PartReaderSvc.
func (s *partService) ListParts(ctx context.Context, params dto.ListPartsParams) ([]domain.Part, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	return s.partRepo.ListParts(ctx, portsrepo.PartListFilter{
		Category: params.Category,
		Status:   params.Status,
		Top:      limit,
	})
}

// ListPartTransactions implements portssvc.PartReaderSvc.
func (s *partService) ListPartTransactions(ctx context.Context, partID string, limit int) ([]domain.Transaction, error) {
	if _, err := s.partRepo.FindPartByID(ctx, partID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	return s.txnRepo.ListTransactionsByPartID(ctx, partID, limit)
}

// RecordInboundReceipt records stock received into inventory.
func (s *partService) RecordInboundReceipt(ctx context.Context, partID string, req dto.InboundReceiptRequest) (*domain.Transaction, *domain.Part, error) {
	return s.ledger.ApplyMovement(ctx, portssvc.ApplyMovementParams{
		PartID:       partID,
		MovementType: domain.MovementIn,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		Notes:        req.Notes,
	})
}

// RecordAdjustment records a manual positive stock correction.
func (s *partService) RecordAdjustment(ctx context.Context, partID string, req dto.AdjustmentRequest) (*domain.Transaction, *domain.Part, error) {
	return s.ledger.ApplyMovement(ctx, portssvc.ApplyMovementParams{
		PartID:       partID,
		MovementType: domain.MovementAdjustment,
		Quantity:     req.Quantity,
		Notes:        req.Reason,
	})
}
