package dto

import (
	"github.com/invomate/invomate_app/internal/core/domain"
)

// ClientResponse defines the data returned for a client record.
type ClientResponse struct {
	ClientID    string `json:"clientID"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ClientSummaryResponse is the all-clients listing entry: id, name and how many
// invoices reference the client.
type ClientSummaryResponse struct {
	ClientID     string `json:"clientID"`
	Name         string `json:"name"`
	InvoiceCount int    `json:"invoiceCount"`
}

// UpdateClientRequest defines the fields allowed when updating a client
// inline through a document patch. Pointers distinguish omitted fields.
type UpdateClientRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
}

// SearchClientsParams defines query parameters for the client name search.
type SearchClientsParams struct {
	Name string `form:"name" binding:"required"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		Name:        c.Name,
		Address:     c.Address,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}

// ToListClientResponse converts a slice of domain.Client to ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return res
}

// ToClientSummaryResponse converts a domain.ClientWithInvoiceCount to its DTO
func ToClientSummaryResponse(c domain.ClientWithInvoiceCount) ClientSummaryResponse {
	return ClientSummaryResponse{
		ClientID:     c.ClientID,
		Name:         c.Name,
		InvoiceCount: c.InvoiceCount,
	}
}
