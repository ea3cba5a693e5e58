package repositories

import (
	"context"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
)

// BuyerReader defines read operations for buyer data.
type BuyerReader interface {
	// FindBuyerByID retrieves a buyer by its store-assigned id.
	FindBuyerByID(ctx context.Context, buyerID string) (*domain.Buyer, error)

	// ListBuyers retrieves buyers, most recently created first.
	ListBuyers(ctx context.Context, limit int) ([]domain.Buyer, error)
}

// BuyerWriter defines write operations for buyer data.
type BuyerWriter interface {
	// SaveBuyer persists a new buyer and returns it with the
	// store-assigned id filled in.
	SaveBuyer(ctx context.Context, buyer domain.Buyer) (*domain.Buyer, error)

	// UpdateBuyer updates a buyer's contact details.
	UpdateBuyer(ctx context.Context, buyer domain.Buyer) error
}

// BuyerRepositoryFacade combines the buyer repository interfaces.
type BuyerRepositoryFacade interface {
	BuyerReader
	BuyerWriter
}
