package repositories

import (
	"context"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
)

// PartListFilter narrows a part listing.
type PartListFilter struct {
	Category string
	Status   *domain.PartStatus
	Top      int
}

// PartReader defines read operations for part data.
type PartReader interface {
	// FindPartByID retrieves a part by its business key (the human-assigned part number).
	FindPartByID(ctx context.Context, partID string) (*domain.Part, error)

	// ListParts retrieves parts matching the filter.
	ListParts(ctx context.Context, filter PartListFilter) ([]domain.Part, error)
}

// PartWriter defines write operations for part data.
type PartWriter interface {
	// SavePart persists a new part.
	SavePart(ctx context.Context, part domain.Part) error

	// UpdatePartDetails updates descriptive fields (never the inventory count).
	UpdatePartDetails(ctx context.Context, part domain.Part) error

	// UpdatePartInventory patches only the cached on-hand count.
	// Called exclusively by ledger application.
	UpdatePartInventory(ctx context.Context, partID string, newOnHand int) error
}

// PartRepositoryFacade combines all part repository interfaces.
type PartRepositoryFacade interface {
	PartReader
	PartWriter
}
