package repositories

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
)

// BusinessReader defines read operations for business data, owner-scoped.
type BusinessReader interface {
	// FindBusinessByID retrieves a business by ID for the given owner.
	FindBusinessByID(ctx context.Context, ownerUserID string, businessID string) (*domain.Business, error)

	// FindBusinessByName retrieves a business by exact name for the given owner.
	FindBusinessByName(ctx context.Context, ownerUserID string, name string) (*domain.Business, error)

	// SearchBusinessesByName retrieves businesses whose name contains the
	// fragment, case-insensitively.
	SearchBusinessesByName(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business data
type BusinessWriter interface {
	// SaveBusiness persists a new business.
	SaveBusiness(ctx context.Context, business domain.Business) error

	// UpdateBusiness updates an existing business's details.
	UpdateBusiness(ctx context.Context, business domain.Business) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
