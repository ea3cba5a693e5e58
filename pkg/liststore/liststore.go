// Package liststore defines the contract for the remote tabular data store
// that backs the application: four named collections of flat records with
// CRUD-over-HTTP semantics. The store offers no cross-record transactions
// and no locks; multi-record consistency is the caller's problem.
package liststore

import "context"

// Collection names a table in the remote store.
type Collection string

const (
	CollectionParts        Collection = "Parts"
	CollectionBuyers       Collection = "Buyers"
	CollectionInvoices     Collection = "Invoices"
	CollectionTransactions Collection = "Transactions"
)

// RecordIDField is the store-assigned identifier present on every record.
const RecordIDField = "id"

// Record is the raw shape of one store row, keyed by the store's native
// field names. Values are whatever the JSON codec produced (string,
// float64, bool, nil).
type Record map[string]any

// ID returns the store-assigned record identifier, if present.
func (r Record) ID() string {
	id, _ := r[RecordIDField].(string)
	return id
}

// Query narrows a List call. Filter is equality-matched against native
// field names; Top limits the number of records returned.
type Query struct {
	Filter  map[string]any
	OrderBy string
	Desc    bool
	Top     int
}

// Store is the CRUD contract against the remote list store.
// Every call is a network round trip and can fail; none is idempotent
// from the caller's point of view except Get and List.
type Store interface {
	List(ctx context.Context, collection Collection, q Query) ([]Record, error)
	Get(ctx context.Context, collection Collection, id string) (Record, error)
	Create(ctx context.Context, collection Collection, fields Record) (Record, error)
	Update(ctx context.Context, collection Collection, id string, fields Record) (Record, error)
	Delete(ctx context.Context, collection Collection, id string) error
}
