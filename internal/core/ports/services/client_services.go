package services

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves one of the user's clients.
	GetClientByID(ctx context.Context, ownerUserID string, clientID string) (*domain.Client, error)

	// SearchClients retrieves the user's clients matching a name fragment.
	SearchClients(ctx context.Context, ownerUserID string, name string) ([]domain.Client, error)

	// ListClientsWithInvoiceCounts lists all clients with their invoice counts.
	ListClientsWithInvoiceCounts(ctx context.Context, ownerUserID string) ([]domain.ClientWithInvoiceCount, error)

	// ListInvoicesForClient lists invoice summaries referencing one client.
	ListInvoicesForClient(ctx context.Context, ownerUserID string, clientID string) ([]domain.InvoiceSummary, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// FindOrCreateClient returns the owner's client with the given name,
	// creating it from the supplied details when absent.
	FindOrCreateClient(ctx context.Context, ownerUserID string, client domain.Client) (*domain.Client, error)

	// UpdateClient applies a partial update to one of the owner's clients.
	UpdateClient(ctx context.Context, ownerUserID string, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
