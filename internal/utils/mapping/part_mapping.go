package mapping

import (
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// Native field names of the Parts collection.
const (
	PartNumberField    = "part_number"
	PartDescField      = "description"
	PartCategoryField  = "category"
	PartQtyOnHandField = "qty_on_hand"
	PartUnitCostField  = "unit_cost"
	PartUnitPriceField = "unit_price"
	PartStatusField    = "status"
)

// Legacy status labels as the store holds them.
const (
	partStatusActiveLabel   = "Active"
	partStatusInactiveLabel = "Inactive"
)

// ToDomainPart converts a raw Parts record to a domain Part.
func ToDomainPart(r liststore.Record) domain.Part {
	status := domain.PartActive
	if stringField(r, PartStatusField) == partStatusInactiveLabel {
		status = domain.PartInactive
	}
	return domain.Part{
		PartID:          stringField(r, PartNumberField),
		Description:     stringField(r, PartDescField),
		Category:        stringField(r, PartCategoryField),
		InventoryOnHand: intField(r, PartQtyOnHandField),
		UnitCost:        decimalField(r, PartUnitCostField),
		UnitPrice:       decimalField(r, PartUnitPriceField),
		Status:          status,
		AuditFields: domain.AuditFields{
			CreatedAt:     timeField(r, "created_at"),
			LastUpdatedAt: timeField(r, "updated_at"),
		},
	}
}

// ToRecordPart converts a domain Part to the Parts record shape.
// The store-assigned record id is never written from here.
func ToRecordPart(p domain.Part) liststore.Record {
	label := partStatusActiveLabel
	if p.Status == domain.PartInactive {
		label = partStatusInactiveLabel
	}
	return liststore.Record{
		PartNumberField:    p.PartID,
		PartDescField:      p.Description,
		PartCategoryField:  p.Category,
		PartQtyOnHandField: p.InventoryOnHand,
		PartUnitCostField:  p.UnitCost.String(),
		PartUnitPriceField: p.UnitPrice.String(),
		PartStatusField:    label,
	}
}

// PartStatusLabel returns the store's label for a domain part status.
func PartStatusLabel(status domain.PartStatus) string {
	if status == domain.PartInactive {
		return partStatusInactiveLabel
	}
	return partStatusActiveLabel
}
