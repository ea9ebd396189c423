package dto

import (
	"github.com/invomate/invomate_app/internal/core/domain"
)

// BusinessResponse defines the data returned for a business record.
type BusinessResponse struct {
	BusinessID  string `json:"businessID"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	ABN         string `json:"abn"`
}

// UpdateBusinessRequest defines the fields allowed when updating a business
// inline through a document patch.
type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	ABN         *string `json:"abn"`
}

// SearchBusinessesParams defines query parameters for the business name search.
type SearchBusinessesParams struct {
	Name string `form:"name" binding:"required"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:  b.BusinessID,
		Name:        b.Name,
		Address:     b.Address,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		ABN:         b.ABN,
	}
}

// ToListBusinessResponse converts a slice of domain.Business to BusinessResponse DTOs
func ToListBusinessResponse(businesses []domain.Business) []BusinessResponse {
	res := make([]BusinessResponse, len(businesses))
	for i, b := range businesses {
		res[i] = ToBusinessResponse(&b)
	}
	return res
}
