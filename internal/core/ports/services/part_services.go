package services

import (
	"context"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/partstrack/parts_inventory_app/internal/dto"
)

// PartReaderSvc defines read operations for part data.
type PartReaderSvc interface {
	// GetPart retrieves a part by its business key.
	GetPart(ctx context.Context, partID string) (*domain.Part, error)

	// ListParts retrieves parts matching the listing parameters.
	ListParts(ctx context.Context, params dto.ListPartsParams) ([]domain.Part, error)

	// ListPartTransactions retrieves a part's ledger rows, newest first.
	ListPartTransactions(ctx context.Context, partID string, limit int) ([]domain.Transaction, error)
}

// PartWriterSvc defines write operations for part data.
type PartWriterSvc interface {
	// CreatePart persists a new part with its starting inventory.
	CreatePart(ctx context.Context, req dto.CreatePartRequest) (*domain.Part, error)

	// UpdatePart updates descriptive fields; the on-hand count is not
	// editable here, only through ledger movements.
	UpdatePart(ctx context.Context, partID string, req dto.UpdatePartRequest) (*domain.Part, error)
}

// PartMovementSvc defines the stock movements initiated from the part side.
type PartMovementSvc interface {
	// RecordInboundReceipt records stock received into inventory.
	RecordInboundReceipt(ctx context.Context, partID string, req dto.InboundReceiptRequest) (*domain.Transaction, *domain.Part, error)

	// RecordAdjustment records a manual positive stock correction.
	RecordAdjustment(ctx context.Context, partID string, req dto.AdjustmentRequest) (*domain.Transaction, *domain.Part, error)
}

// PartSvcFacade combines all part-related service interfaces.
type PartSvcFacade interface {
	PartReaderSvc
	PartWriterSvc
	PartMovementSvc
}
