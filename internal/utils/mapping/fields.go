// Package mapping translates between the remote store's raw record shape
// (native field names, legacy labels, JSON-typed values) and the domain
// entities. The native names here are the store's, not ours; nothing
// outside this package should mention them.
package mapping

import (
	"fmt"
	"strconv"
	"time"

	"github.com/partstrack/parts_inventory_app/pkg/liststore"
	"github.com/shopspring/decimal"
)

// stringField reads a string-valued native field, tolerating nil.
func stringField(r liststore.Record, field string) string {
	value, ok := r[field]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// intField reads an integer-valued native field. JSON decoding delivers
// numbers as float64; older store rows carry them as strings.
func intField(r liststore.Record, field string) int {
	switch value := r[field].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// decimalField reads a currency-valued native field. Unparseable or
// missing values map to zero, matching how the store treats blank cells.
func decimalField(r liststore.Record, field string) decimal.Decimal {
	switch value := r[field].(type) {
	case float64:
		return decimal.NewFromFloat(value)
	case string:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// timeField reads an RFC3339 timestamp field; zero time when absent.
func timeField(r liststore.Record, field string) time.Time {
	s, ok := r[field].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

// optionalStringField reads a nullable string field as a pointer.
func optionalStringField(r liststore.Record, field string) *string {
	s, ok := r[field].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}
