package listrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	"github.com/partstrack/parts_inventory_app/internal/utils/mapping"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// BuyerRepository implements portsrepo.BuyerRepositoryFacade over the list store.
type BuyerRepository struct {
	store liststore.Store
}

var _ portsrepo.BuyerRepositoryFacade = (*BuyerRepository)(nil)

// NewBuyerRepository creates a new BuyerRepository.
func NewBuyerRepository(store liststore.Store) *BuyerRepository {
	return &BuyerRepository{store: store}
}

// FindBuyerByID implements portsrepo.BuyerReader.
func (r *BuyerRepository) FindBuyerByID(ctx context.Context, buyerID string) (*domain.Buyer, error) {
	record, err := r.store.Get(ctx, liststore.CollectionBuyers, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get buyer %s: %w", buyerID, err)
	}
	buyer := mapping.ToDomainBuyer(record)
	return &buyer, nil
}

// ListBuyers implements portsrepo.BuyerReader.
func (r *BuyerRepository) ListBuyers(ctx context.Context, limit int) ([]domain.Buyer, error) {
	records, err := r.store.List(ctx, liststore.CollectionBuyers, liststore.Query{
		OrderBy: "created_at",
		Desc:    true,
		Top:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}
	return mapping.ToDomainBuyerSlice(records), nil
}

// SaveBuyer implements portsrepo.BuyerWriter.
func (r *BuyerRepository) SaveBuyer(ctx context.Context, buyer domain.Buyer) (*domain.Buyer, error) {
	fields := mapping.ToRecordBuyer(buyer)
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	record, err := r.store.Create(ctx, liststore.CollectionBuyers, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to save buyer %s: %w", buyer.BuyerName, err)
	}
	created := mapping.ToDomainBuyer(record)
	return &created, nil
}

// UpdateBuyer implements portsrepo.BuyerWriter.
func (r *BuyerRepository) UpdateBuyer(ctx context.Context, buyer domain.Buyer) error {
	fields := mapping.ToRecordBuyer(buyer)
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	if _, err := r.store.Update(ctx, liststore.CollectionBuyers, buyer.BuyerID, fields); err != nil {
		return fmt.Errorf("failed to update buyer %s: %w", buyer.BuyerID, err)
	}
	return nil
}
