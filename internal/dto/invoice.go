package dto

import (
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one transient line of a finalize call.
type LineItemRequest struct {
	PartID    string          `json:"partID" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// ToDomain converts the request line to a domain line item.
func (li LineItemRequest) ToDomain() domain.LineItem {
	return domain.LineItem{
		PartID:    li.PartID,
		Quantity:  li.Quantity,
		UnitPrice: li.UnitPrice,
	}
}

// CreateInvoiceRequest defines the payload for creating an invoice.
// LineItems are only consulted on the create-and-finalize path.
type CreateInvoiceRequest struct {
	InvoiceNumber string            `json:"invoiceNumber" binding:"required"`
	BuyerID       string            `json:"buyerID" binding:"required"`
	InvoiceDate   time.Time         `json:"invoiceDate"`
	Notes         string            `json:"notes"`
	LineItems     []LineItemRequest `json:"lineItems,omitempty"`
}

// FinalizeInvoiceRequest defines the payload for finalizing a draft.
type FinalizeInvoiceRequest struct {
	LineItems []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// ListInvoicesParams holds the parameters for listing invoices.
type ListInvoicesParams struct {
	Status  *domain.InvoiceStatus `form:"status"`
	BuyerID string                `form:"buyerID"`
	Limit   int                   `form:"limit"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	BuyerID       string          `json:"buyerID"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		BuyerID:       inv.BuyerID,
		InvoiceDate:   inv.InvoiceDate,
		TotalAmount:   inv.TotalAmount,
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		LastUpdatedAt: inv.LastUpdatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(&inv)
	}
	return responses
}
