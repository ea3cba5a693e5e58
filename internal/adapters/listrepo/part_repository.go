// Package listrepo implements the repository ports on top of the remote
// list store contract, translating records through the mapping package.
package listrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	"github.com/partstrack/parts_inventory_app/internal/utils/mapping"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// PartRepository implements portsrepo.PartRepositoryFacade over the list store.
type PartRepository struct {
	store liststore.Store
}

var _ portsrepo.PartRepositoryFacade = (*PartRepository)(nil)

// NewPartRepository creates a new PartRepository.
func NewPartRepository(store liststore.Store) *PartRepository {
	return &PartRepository{store: store}
}

// findPartRecord locates the raw record for a business key. Parts are
// keyed by part number in the domain but by a store-assigned id in the
// store, so every part lookup goes through a filtered list.
func (r *PartRepository) findPartRecord(ctx context.Context, partID string) (liststore.Record, error) {
	records, err := r.store.List(ctx, liststore.CollectionParts, liststore.Query{
		Filter: map[string]any{mapping.PartNumberField: partID},
		Top:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query part %s: %w", partID, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("part %s: %w", partID, apperrors.ErrNotFound)
	}
	return records[0], nil
}

// FindPartByID implements portsrepo.PartReader.
func (r *PartRepository) FindPartByID(ctx context.Context, partID string) (*domain.Part, error) {
	record, err := r.findPartRecord(ctx, partID)
	if err != nil {
		return nil, err
	}
	part := mapping.ToDomainPart(record)
	return &part, nil
}

// ListParts implements portsrepo.PartReader.
func (r *PartRepository) ListParts(ctx context.Context, filter portsrepo.PartListFilter) ([]domain.Part, error) {
	q := liststore.Query{
		Filter:  map[string]any{},
		OrderBy: mapping.PartNumberField,
		Top:     filter.Top,
	}
	if filter.Category != "" {
		q.Filter[mapping.PartCategoryField] = filter.Category
	}
	if filter.Status != nil {
		q.Filter[mapping.PartStatusField] = mapping.PartStatusLabel(*filter.Status)
	}

	records, err := r.store.List(ctx, liststore.CollectionParts, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	parts := make([]domain.Part, len(records))
	for i, record := range records {
		parts[i] = mapping.ToDomainPart(record)
	}
	return parts, nil
}

// SavePart implements portsrepo.PartWriter.
func (r *PartRepository) SavePart(ctx context.Context, part domain.Part) error {
	fields := mapping.ToRecordPart(part)
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	if _, err := r.store.Create(ctx, liststore.CollectionParts, fields); err != nil {
		return fmt.Errorf("failed to save part %s: %w", part.PartID, err)
	}
	return nil
}

// UpdatePartDetails implements portsrepo.PartWriter. The cached inventory
// count is excluded from the patch; only ledger application touches it.
func (r *PartRepository) UpdatePartDetails(ctx context.Context, part domain.Part) error {
	record, err := r.findPartRecord(ctx, part.PartID)
	if err != nil {
		return err
	}
	fields := mapping.ToRecordPart(part)
	delete(fields, mapping.PartQtyOnHandField)
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	if _, err := r.store.Update(ctx, liststore.CollectionParts, record.ID(), fields); err != nil {
		return fmt.Errorf("failed to update part %s: %w", part.PartID, err)
	}
	return nil
}

// UpdatePartInventory implements portsrepo.PartWriter.
func (r *PartRepository) UpdatePartInventory(ctx context.Context, partID string, newOnHand int) error {
	record, err := r.findPartRecord(ctx, partID)
	if err != nil {
		return err
	}
	fields := liststore.Record{
		mapping.PartQtyOnHandField: newOnHand,
		"updated_at":               time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := r.store.Update(ctx, liststore.CollectionParts, record.ID(), fields); err != nil {
		return fmt.Errorf("failed to update inventory for part %s: %w", partID, err)
	}
	return nil
}
