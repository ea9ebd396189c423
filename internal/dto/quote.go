package dto

import (
	"time"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest defines the data needed to create a quote. Mirrors
// CreateInvoiceRequest with quote naming and the quote status set.
type CreateQuoteRequest struct {
	ClientName        string `json:"clientName" binding:"required"`
	ClientAddress     string `json:"clientAddress"`
	ClientEmail       string `json:"clientEmail"`
	ClientPhoneNumber string `json:"clientPhoneNumber"`

	BusinessName        string `json:"businessName" binding:"required"`
	BusinessAddress     string `json:"businessAddress"`
	BusinessEmail       string `json:"businessEmail"`
	BusinessPhoneNumber string `json:"businessPhoneNumber"`
	ABN                 string `json:"abn"`

	QuoteDate    string            `json:"quoteDate" binding:"required"`
	DueDate      string            `json:"dueDate" binding:"required"`
	QuoteNumber  string            `json:"quoteNumber" binding:"required"`
	QuoteItems   []LineItemRequest `json:"quoteItems" binding:"required,dive"`
	TaxRate      decimal.Decimal   `json:"taxRate"`
	IncludeTax   bool              `json:"includeTax"`
	Discount     decimal.Decimal   `json:"discount"`
	TemplateType string            `json:"templateType" binding:"required,oneof=template1 template2 template3"`
	Status       string            `json:"status" binding:"omitempty,oneof=Draft Sent Accepted Declined"`
}

// UpdateQuoteRequest defines the data allowed for patching a quote.
type UpdateQuoteRequest struct {
	ClientName        *string `json:"clientName"`
	ClientAddress     *string `json:"clientAddress"`
	ClientEmail       *string `json:"clientEmail"`
	ClientPhoneNumber *string `json:"clientPhoneNumber"`

	BusinessName        *string `json:"businessName"`
	BusinessAddress     *string `json:"businessAddress"`
	BusinessEmail       *string `json:"businessEmail"`
	BusinessPhoneNumber *string `json:"businessPhoneNumber"`
	ABN                 *string `json:"abn"`

	QuoteDate    *string            `json:"quoteDate"`
	DueDate      *string            `json:"dueDate"`
	QuoteNumber  *string            `json:"quoteNumber"`
	QuoteItems   *[]LineItemRequest `json:"quoteItems" binding:"omitempty,dive"`
	TaxRate      *decimal.Decimal   `json:"taxRate"`
	IncludeTax   *bool              `json:"includeTax"`
	Discount     *decimal.Decimal   `json:"discount"`
	TemplateType *string            `json:"templateType" binding:"omitempty,oneof=template1 template2 template3"`
	Status       *string            `json:"status" binding:"omitempty,oneof=Draft Sent Accepted Declined"`
}

// HasClientFields reports whether the patch touches the referenced client.
func (r UpdateQuoteRequest) HasClientFields() bool {
	return r.ClientName != nil || r.ClientAddress != nil || r.ClientEmail != nil || r.ClientPhoneNumber != nil
}

// HasBusinessFields reports whether the patch touches the referenced business.
func (r UpdateQuoteRequest) HasBusinessFields() bool {
	return r.BusinessName != nil || r.BusinessAddress != nil || r.BusinessEmail != nil ||
		r.BusinessPhoneNumber != nil || r.ABN != nil
}

// QuoteResponse defines the data returned for a full quote.
type QuoteResponse struct {
	QuoteID      string             `json:"quoteID"`
	QuoteDate    string             `json:"quoteDate"`
	DueDate      string             `json:"dueDate"`
	QuoteNumber  string             `json:"quoteNumber"`
	QuoteItems   []LineItemResponse `json:"quoteItems"`
	TaxRate      decimal.Decimal    `json:"taxRate"`
	IncludeTax   bool               `json:"includeTax"`
	Discount     decimal.Decimal    `json:"discount"`
	Total        decimal.Decimal    `json:"total"`
	TemplateType string             `json:"templateType"`
	Status       string             `json:"status"`
	Client       ClientResponse     `json:"client"`
	Business     BusinessResponse   `json:"business"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// QuoteSummaryResponse is the listing entry for a user's quotes.
type QuoteSummaryResponse struct {
	QuoteID     string    `json:"quoteID"`
	QuoteNumber string    `json:"quoteNumber"`
	ClientName  string    `json:"clientName"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateQuoteResponse pairs the created quote with the uploaded PDF URL.
type CreateQuoteResponse struct {
	Quote  QuoteResponse `json:"quote"`
	PDFURL string        `json:"pdfUrl"`
}

// ConvertQuoteResponse carries the invoice produced from a quote.
type ConvertQuoteResponse struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// ToQuoteResponse converts a domain.Quote plus its resolved client and
// business to a QuoteResponse DTO
func ToQuoteResponse(q *domain.Quote, client *domain.Client, business *domain.Business) QuoteResponse {
	return QuoteResponse{
		QuoteID:      q.QuoteID,
		QuoteDate:    q.QuoteDate,
		DueDate:      q.DueDate,
		QuoteNumber:  q.QuoteNumber,
		QuoteItems:   ToListLineItemResponse(q.Items),
		TaxRate:      q.TaxRate,
		IncludeTax:   q.IncludeTax,
		Discount:     q.Discount,
		Total:        q.Total,
		TemplateType: string(q.TemplateType),
		Status:       string(q.Status),
		Client:       ToClientResponse(client),
		Business:     ToBusinessResponse(business),
		CreatedAt:    q.CreatedAt,
	}
}

// ToQuoteSummaryResponse converts a domain.QuoteSummary to its DTO
func ToQuoteSummaryResponse(s domain.QuoteSummary) QuoteSummaryResponse {
	return QuoteSummaryResponse{
		QuoteID:     s.QuoteID,
		QuoteNumber: s.QuoteNumber,
		ClientName:  s.ClientName,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

// ToListQuoteSummaryResponse converts a slice of domain.QuoteSummary to DTOs
func ToListQuoteSummaryResponse(summaries []domain.QuoteSummary) []QuoteSummaryResponse {
	res := make([]QuoteSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = ToQuoteSummaryResponse(s)
	}
	return res
}
