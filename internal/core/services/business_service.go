package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// businessSearchLimit caps name-fragment search results.
const businessSearchLimit = 10

// BusinessService provides business operations, all scoped to the owning user.
type BusinessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewBusinessService creates a new instance of BusinessService.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade) *BusinessService {
	return &BusinessService{businessRepo: businessRepo}
}

var _ portssvc.BusinessSvcFacade = (*BusinessService)(nil)

// GetBusinessByID retrieves one of the user's businesses.
func (s *BusinessService) GetBusinessByID(ctx context.Context, ownerUserID string, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, ownerUserID, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}
	return business, nil
}

// SearchBusinesses retrieves the user's businesses whose name contains the fragment.
func (s *BusinessService) SearchBusinesses(ctx context.Context, ownerUserID string, name string) ([]domain.Business, error) {
	businesses, err := s.businessRepo.SearchBusinessesByName(ctx, ownerUserID, name, businessSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	return businesses, nil
}

// FindOrCreateBusiness returns the owner's business with the given name,
// creating it from the supplied details when absent.
func (s *BusinessService) FindOrCreateBusiness(ctx context.Context, ownerUserID string, business domain.Business) (*domain.Business, error) {
	existing, err := s.businessRepo.FindBusinessByName(ctx, ownerUserID, business.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up business by name: %w", err)
	}

	now := time.Now()
	business.BusinessID = uuid.NewString()
	business.OwnerUserID = ownerUserID
	business.CreatedAt = now
	business.CreatedBy = ownerUserID
	business.LastUpdatedAt = now
	business.LastUpdatedBy = ownerUserID

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	s.LogInfo(ctx, "business created", "business_id", business.BusinessID)
	return &business, nil
}

// UpdateBusiness applies a partial update to one of the owner's businesses.
func (s *BusinessService) UpdateBusiness(ctx context.Context, ownerUserID string, businessID string, req dto.UpdateBusinessRequest) (*domain.Business, error) {
	business, err := s.GetBusinessByID(ctx, ownerUserID, businessID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Email != nil {
		business.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		business.PhoneNumber = *req.PhoneNumber
	}
	if req.ABN != nil {
		business.ABN = *req.ABN
	}
	business.LastUpdatedAt = time.Now()
	business.LastUpdatedBy = ownerUserID

	if err := s.businessRepo.UpdateBusiness(ctx, *business); err != nil {
		return nil, fmt.Errorf("failed to update business %s: %w", businessID, err)
	}
	return business, nil
}
