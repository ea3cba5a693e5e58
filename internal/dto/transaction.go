package dto

import (
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for one ledger row.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	PartID        string          `json:"partID"`
	MovementType  string          `json:"movementType"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	InvoiceID     *string         `json:"invoiceID,omitempty"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		PartID:        txn.PartID,
		MovementType:  string(txn.MovementType),
		Quantity:      txn.Quantity,
		UnitCost:      txn.UnitCost,
		UnitPrice:     txn.UnitPrice,
		InvoiceID:     txn.InvoiceID,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
