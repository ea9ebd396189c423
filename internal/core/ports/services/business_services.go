package services

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/dto"
)

// BusinessReaderSvc defines read operations for business data
type BusinessReaderSvc interface {
	// GetBusinessByID retrieves one of the user's businesses.
	GetBusinessByID(ctx context.Context, ownerUserID string, businessID string) (*domain.Business, error)

	// SearchBusinesses retrieves the user's businesses matching a name fragment.
	SearchBusinesses(ctx context.Context, ownerUserID string, name string) ([]domain.Business, error)
}

// BusinessWriterSvc defines write operations for business data
type BusinessWriterSvc interface {
	// FindOrCreateBusiness returns the owner's business with the given name,
	// creating it from the supplied details when absent.
	FindOrCreateBusiness(ctx context.Context, ownerUserID string, business domain.Business) (*domain.Business, error)

	// UpdateBusiness applies a partial update to one of the owner's businesses.
	UpdateBusiness(ctx context.Context, ownerUserID string, businessID string, req dto.UpdateBusinessRequest) (*domain.Business, error)
}

// BusinessSvcFacade combines all business-related service interfaces
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
}
