package dto

import (
	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest defines a single line item as supplied by the caller.
// Total is never accepted from the caller; it is derived from quantity and
// unit price on every write.
type LineItemRequest struct {
	ItemName    string          `json:"itemName" binding:"required"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// UpdateLineItemRequest defines the fields allowed when patching an item.
// Pointers distinguish omitted fields from zero values.
type UpdateLineItemRequest struct {
	ItemName    *string          `json:"itemName"`
	Description *string          `json:"description"`
	Quantity    *int64           `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	ItemID      string          `json:"itemID"`
	ItemName    string          `json:"itemName"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO
func ToLineItemResponse(item domain.LineItem) LineItemResponse {
	return LineItemResponse{
		ItemID:      item.ItemID,
		ItemName:    item.ItemName,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Total:       item.Total,
	}
}

// ToListLineItemResponse converts a slice of domain.LineItem to LineItemResponse DTOs
func ToListLineItemResponse(items []domain.LineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, item := range items {
		res[i] = ToLineItemResponse(item)
	}
	return res
}

// ToDomainLineItem converts a LineItemRequest to a domain.LineItem without an
// assigned ID or derived total; the service fills both.
func (r LineItemRequest) ToDomainLineItem() domain.LineItem {
	return domain.LineItem{
		ItemName:    r.ItemName,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

// ToDomainLineItems converts a slice of LineItemRequest to domain line items.
func ToDomainLineItems(reqs []LineItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = r.ToDomainLineItem()
	}
	return items
}
