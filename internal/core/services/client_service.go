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

// clientSearchLimit caps name-fragment search results.
const clientSearchLimit = 10

// ClientService provides client operations, all scoped to the owning user.
type ClientService struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewClientService creates a new instance of ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

// GetClientByID retrieves one of the user's clients.
func (s *ClientService) GetClientByID(ctx context.Context, ownerUserID string, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, ownerUserID, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

// SearchClients retrieves the user's clients whose name contains the fragment.
func (s *ClientService) SearchClients(ctx context.Context, ownerUserID string, name string) ([]domain.Client, error) {
	clients, err := s.clientRepo.SearchClientsByName(ctx, ownerUserID, name, clientSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}

// ListClientsWithInvoiceCounts lists all of the user's clients with the
// number of invoices referencing each.
func (s *ClientService) ListClientsWithInvoiceCounts(ctx context.Context, ownerUserID string) ([]domain.ClientWithInvoiceCount, error) {
	clients, err := s.clientRepo.FindClientsWithInvoiceCounts(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// ListInvoicesForClient lists invoice summaries referencing one client. The
// client must exist and belong to the user.
func (s *ClientService) ListInvoicesForClient(ctx context.Context, ownerUserID string, clientID string) ([]domain.InvoiceSummary, error) {
	if _, err := s.GetClientByID(ctx, ownerUserID, clientID); err != nil {
		return nil, err
	}
	summaries, err := s.invoiceRepo.FindInvoiceSummariesByClient(ctx, ownerUserID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for client %s: %w", clientID, err)
	}
	return summaries, nil
}

// FindOrCreateClient returns the owner's client with the given name, creating
// it when absent. A new client must carry an email or a phone number.
func (s *ClientService) FindOrCreateClient(ctx context.Context, ownerUserID string, client domain.Client) (*domain.Client, error) {
	existing, err := s.clientRepo.FindClientByName(ctx, ownerUserID, client.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up client by name: %w", err)
	}

	if !client.HasContact() {
		return nil, apperrors.NewBadRequestError("client requires an email or phone number")
	}

	now := time.Now()
	client.ClientID = uuid.NewString()
	client.OwnerUserID = ownerUserID
	client.CreatedAt = now
	client.CreatedBy = ownerUserID
	client.LastUpdatedAt = now
	client.LastUpdatedBy = ownerUserID

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "client created", "client_id", client.ClientID)
	return &client, nil
}

// UpdateClient applies a partial update to one of the owner's clients.
func (s *ClientService) UpdateClient(ctx context.Context, ownerUserID string, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.GetClientByID(ctx, ownerUserID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		client.PhoneNumber = *req.PhoneNumber
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = ownerUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}
	return client, nil
}
