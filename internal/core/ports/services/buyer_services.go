package services

import (
	"context"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/partstrack/parts_inventory_app/internal/dto"
)

// BuyerSvcFacade defines the operations on buyer reference data.
type BuyerSvcFacade interface {
	// CreateBuyer persists a new buyer.
	CreateBuyer(ctx context.Context, req dto.CreateBuyerRequest) (*domain.Buyer, error)

	// GetBuyer retrieves a buyer by id.
	GetBuyer(ctx context.Context, buyerID string) (*domain.Buyer, error)

	// ListBuyers retrieves buyers, most recently created first.
	ListBuyers(ctx context.Context, limit int) ([]domain.Buyer, error)

	// UpdateBuyer updates a buyer's contact details.
	UpdateBuyer(ctx context.Context, buyerID string, req dto.UpdateBuyerRequest) (*domain.Buyer, error)
}
