package services

import (
	"context"
	"fmt"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
)

// buyerService manages buyer reference data.
type buyerService struct {
	buyerRepo portsrepo.BuyerRepositoryFacade
}

// NewBuyerService creates a new BuyerService.
func NewBuyerService(buyerRepo portsrepo.BuyerRepositoryFacade) portssvc.BuyerSvcFacade {
	return &buyerService{buyerRepo: buyerRepo}
}

var _ portssvc.BuyerSvcFacade = (*buyerService)(nil)

// CreateBuyer implements portssvc.BuyerSvcFacade.
func (s *buyerService) CreateBuyer(ctx context.Context, req dto.CreateBuyerRequest) (*domain.Buyer, error) {
	now := time.Now().UTC()
	buyer := domain.Buyer{
		BuyerName:    req.BuyerName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.buyerRepo.SaveBuyer(ctx, buyer)
	if err != nil {
		return nil, fmt.Errorf("failed to save buyer: %w", err)
	}
	return created, nil
}

// GetBuyer implements portssvc.BuyerSvcFacade.
func (s *buyerService) GetBuyer(ctx context.Context, buyerID string) (*domain.Buyer, error) {
	return s.buyerRepo.FindBuyerByID(ctx, buyerID)
}

// ListBuyers implements portssvc.BuyerSvcFacade.
func (s *buyerService) ListBuyers(ctx context.Context, limit int) ([]domain.Buyer, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.buyerRepo.ListBuyers(ctx, limit)
}

// UpdateBuyer implements portssvc.BuyerSvcFacade.
func (s *buyerService) UpdateBuyer(ctx context.Context, buyerID string, req dto.UpdateBuyerRequest) (*domain.Buyer, error) {
	buyer, err := s.buyerRepo.FindBuyerByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.BuyerName != nil {
		buyer.BuyerName = *req.BuyerName
		updated = true
	}
	if req.ContactEmail != nil {
		buyer.ContactEmail = *req.ContactEmail
		updated = true
	}
	if req.Phone != nil {
		buyer.Phone = *req.Phone
		updated = true
	}
	if !updated {
		return buyer, nil
	}

	buyer.LastUpdatedAt = time.Now().UTC()
	if err := s.buyerRepo.UpdateBuyer(ctx, *buyer); err != nil {
		return nil, fmt.Errorf("failed to update buyer %s: %w", buyerID, err)
	}
	return buyer, nil
}
