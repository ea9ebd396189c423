package repositories

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
)

// ClientReader defines read operations for client data. All lookups are scoped
// to the owning user.
type ClientReader interface {
	// FindClientByID retrieves a client by ID for the given owner.
	FindClientByID(ctx context.Context, ownerUserID string, clientID string) (*domain.Client, error)

	// FindClientByName retrieves a client by exact name for the given owner.
	FindClientByName(ctx context.Context, ownerUserID string, name string) (*domain.Client, error)

	// SearchClientsByName retrieves clients whose name contains the fragment,
	// case-insensitively, up to limit.
	SearchClientsByName(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Client, error)

	// FindClientsWithInvoiceCounts lists all of the owner's clients with the
	// number of invoices referencing each.
	FindClientsWithInvoiceCounts(ctx context.Context, ownerUserID string) ([]domain.ClientWithInvoiceCount, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
