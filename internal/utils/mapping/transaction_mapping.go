package mapping

import (
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// Native field names of the Transactions collection.
const (
	TxnPartNumberField   = "part_number"
	TxnMovementTypeField = "movement_type"
	TxnQuantityField     = "quantity"
	TxnUnitCostField     = "unit_cost"
	TxnUnitPriceField    = "unit_price"
	TxnInvoiceIDField    = "invoice_id"
	TxnNotesField        = "notes"
)

// The store predates this backend and labels movements with display text.
var movementLabels = map[domain.MovementType]string{
	domain.MovementIn:             "In (Received)",
	domain.MovementOut:            "Out (Sold)",
	domain.MovementAdjustment:     "Adjustment",
	domain.MovementVoidAdjustment: "Void adjustment",
}

var movementFromLabel = func() map[string]domain.MovementType {
	m := make(map[string]domain.MovementType, len(movementLabels))
	for movement, label := range movementLabels {
		m[label] = movement
	}
	return m
}()

// MovementLabel returns the store's display label for a movement type.
func MovementLabel(m domain.MovementType) string {
	return movementLabels[m]
}

// ToDomainTransaction converts a raw Transactions record to a domain
// ledger Transaction.
func ToDomainTransaction(r liststore.Record) domain.Transaction {
	return domain.Transaction{
		TransactionID: r.ID(),
		PartID:        stringField(r, TxnPartNumberField),
		MovementType:  movementFromLabel[stringField(r, TxnMovementTypeField)],
		Quantity:      intField(r, TxnQuantityField),
		UnitCost:      decimalField(r, TxnUnitCostField),
		UnitPrice:     decimalField(r, TxnUnitPriceField),
		InvoiceID:     optionalStringField(r, TxnInvoiceIDField),
		Notes:         stringField(r, TxnNotesField),
		CreatedAt:     timeField(r, "created_at"),
	}
}

// ToDomainTransactionSlice converts a slice of raw records.
func ToDomainTransactionSlice(rs []liststore.Record) []domain.Transaction {
	ds := make([]domain.Transaction, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainTransaction(r)
	}
	return ds
}

// ToRecordTransaction converts a domain Transaction to the Transactions
// record shape. Cost is written for inbound movements, price for outbound;
// the other stays absent, matching the store's mutual-exclusion convention.
func ToRecordTransaction(t domain.Transaction) liststore.Record {
	r := liststore.Record{
		TxnPartNumberField:   t.PartID,
		TxnMovementTypeField: movementLabels[t.MovementType],
		TxnQuantityField:     t.Quantity,
		TxnNotesField:        t.Notes,
	}
	if t.MovementType == domain.MovementOut {
		r[TxnUnitPriceField] = t.UnitPrice.String()
	} else if !t.UnitCost.IsZero() {
		r[TxnUnitCostField] = t.UnitCost.String()
	}
	if t.InvoiceID != nil {
		r[TxnInvoiceIDField] = *t.InvoiceID
	}
	return r
}
