package apperrors

import "fmt"

// LineItemOutcome records what happened to one line item during a
// multi-step reconciliation (finalize or void).
type LineItemOutcome struct {
	Index         int    `json:"index"`
	PartID        string `json:"partID"`
	Quantity      int    `json:"quantity"`
	TransactionID string `json:"transactionID,omitempty"` // set when the ledger row was written
	Err           error  `json:"-"`
	ErrMessage    string `json:"error,omitempty"`
}

// PartialReconciliationError reports a finalize/void that failed part way
// through. The backing store has no cross-record transactions, so rows
// written before the failure stay written; this error says exactly which.
type PartialReconciliationError struct {
	InvoiceID    string            `json:"invoiceID"`
	Applied      []LineItemOutcome `json:"applied"`
	Failed       LineItemOutcome   `json:"failed"`
	NotAttempted []LineItemOutcome `json:"notAttempted"`
}

func (e *PartialReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation of invoice %s partially applied: %d applied, item %d (part %s) failed: %v, %d not attempted",
		e.InvoiceID, len(e.Applied), e.Failed.Index, e.Failed.PartID, e.Failed.Err, len(e.NotAttempted))
}

// Unwrap exposes the underlying failure so callers can classify it
// (validation, not found, store error) with errors.Is / errors.As.
func (e *PartialReconciliationError) Unwrap() error {
	return e.Failed.Err
}
