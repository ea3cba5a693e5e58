package mapping

import (
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// Native field names of the Buyers collection.
const (
	BuyerNameField  = "buyer_name"
	BuyerEmailField = "contact_email"
	BuyerPhoneField = "phone"
)

// ToDomainBuyer converts a raw Buyers record to a domain Buyer.
func ToDomainBuyer(r liststore.Record) domain.Buyer {
	return domain.Buyer{
		BuyerID:      r.ID(),
		BuyerName:    stringField(r, BuyerNameField),
		ContactEmail: stringField(r, BuyerEmailField),
		Phone:        stringField(r, BuyerPhoneField),
		AuditFields: domain.AuditFields{
			CreatedAt:     timeField(r, "created_at"),
			LastUpdatedAt: timeField(r, "updated_at"),
		},
	}
}

// ToDomainBuyerSlice converts a slice of raw records.
func ToDomainBuyerSlice(rs []liststore.Record) []domain.Buyer {
	ds := make([]domain.Buyer, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainBuyer(r)
	}
	return ds
}

// ToRecordBuyer converts a domain Buyer to the Buyers record shape.
func ToRecordBuyer(b domain.Buyer) liststore.Record {
	return liststore.Record{
		BuyerNameField:  b.BuyerName,
		BuyerEmailField: b.ContactEmail,
		BuyerPhoneField: b.Phone,
	}
}
