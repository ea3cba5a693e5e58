package dto

import (
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartRequest defines the payload for creating a part.
type CreatePartRequest struct {
	PartID          string          `json:"partID" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Category        string          `json:"category"`
	InventoryOnHand int             `json:"inventoryOnHand" binding:"gte=0"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

// UpdatePartRequest defines the payload for editing part details.
// Inventory is deliberately absent; it only moves through the ledger.
type UpdatePartRequest struct {
	Description *string            `json:"description,omitempty"`
	Category    *string            `json:"category,omitempty"`
	UnitCost    *decimal.Decimal   `json:"unitCost,omitempty"`
	UnitPrice   *decimal.Decimal   `json:"unitPrice,omitempty"`
	Status      *domain.PartStatus `json:"status,omitempty"`
}

// InboundReceiptRequest defines the payload for recording received stock.
type InboundReceiptRequest struct {
	Quantity int             `json:"quantity" binding:"required,gt=0"`
	UnitCost decimal.Decimal `json:"unitCost"`
	Notes    string          `json:"notes"`
}

// AdjustmentRequest defines the payload for a manual stock correction.
type AdjustmentRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Reason   string `json:"reason" binding:"required"`
}

// ListPartsParams holds the parameters for listing parts.
type ListPartsParams struct {
	Category string             `form:"category"`
	Status   *domain.PartStatus `form:"status"`
	Limit    int                `form:"limit"`
}

// PartResponse defines the data returned for a part.
type PartResponse struct {
	PartID          string          `json:"partID"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	InventoryOnHand int             `json:"inventoryOnHand"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToPartResponse converts a domain.Part to PartResponse DTO.
func ToPartResponse(p *domain.Part) PartResponse {
	return PartResponse{
		PartID:          p.PartID,
		Description:     p.Description,
		Category:        p.Category,
		InventoryOnHand: p.InventoryOnHand,
		UnitCost:        p.UnitCost,
		UnitPrice:       p.UnitPrice,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}

// ToPartResponses converts a slice of domain.Part to []PartResponse.
func ToPartResponses(parts []domain.Part) []PartResponse {
	responses := make([]PartResponse, len(parts))
	for i, p := range parts {
		responses[i] = ToPartResponse(&p)
	}
	return responses
}
