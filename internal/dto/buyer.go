package dto

import (
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
)

// CreateBuyerRequest defines the payload for creating a buyer.
type CreateBuyerRequest struct {
	BuyerName    string `json:"buyerName" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	Phone        string `json:"phone"`
}

// UpdateBuyerRequest defines the payload for editing a buyer.
type UpdateBuyerRequest struct {
	BuyerName    *string `json:"buyerName,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
}

// BuyerResponse defines the data returned for a buyer.
type BuyerResponse struct {
	BuyerID      string    `json:"buyerID"`
	BuyerName    string    `json:"buyerName"`
	ContactEmail string    `json:"contactEmail"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToBuyerResponse converts a domain.Buyer to BuyerResponse DTO.
func ToBuyerResponse(b *domain.Buyer) BuyerResponse {
	return BuyerResponse{
		BuyerID:      b.BuyerID,
		BuyerName:    b.BuyerName,
		ContactEmail: b.ContactEmail,
		Phone:        b.Phone,
		CreatedAt:    b.CreatedAt,
	}
}

// ToBuyerResponses converts a slice of domain.Buyer to []BuyerResponse.
func ToBuyerResponses(buyers []domain.Buyer) []BuyerResponse {
	responses := make([]BuyerResponse, len(buyers))
	for i, b := range buyers {
		responses[i] = ToBuyerResponse(&b)
	}
	return responses
}
