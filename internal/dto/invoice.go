package dto

import (
	"time"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create an invoice. Client and
// business are referenced by name; unknown names are created on the fly under
// the calling user.
type CreateInvoiceRequest struct {
	ClientName        string `json:"clientName" binding:"required"`
	ClientAddress     string `json:"clientAddress"`
	ClientEmail       string `json:"clientEmail"`
	ClientPhoneNumber string `json:"clientPhoneNumber"`

	BusinessName        string `json:"businessName" binding:"required"`
	BusinessAddress     string `json:"businessAddress"`
	BusinessEmail       string `json:"businessEmail"`
	BusinessPhoneNumber string `json:"businessPhoneNumber"`
	ABN                 string `json:"abn"`

	InvoiceDate   string            `json:"invoiceDate" binding:"required"`
	DueDate       string            `json:"dueDate" binding:"required"`
	InvoiceNumber string            `json:"invoiceNumber" binding:"required"`
	InvoiceItems  []LineItemRequest `json:"invoiceItems" binding:"required,dive"`
	TaxRate       decimal.Decimal   `json:"taxRate"`
	IncludeTax    bool              `json:"includeTax"`
	Discount      decimal.Decimal   `json:"discount"`
	TemplateType  string            `json:"templateType" binding:"required,oneof=template1 template2 template3"`
	Status        string            `json:"status" binding:"omitempty,oneof=Paid Unpaid Overdue"`
}

// UpdateInvoiceRequest defines the data allowed for patching an invoice.
// Client/business fields update the referenced records in place. Replacing the
// item list recomputes the stored total.
type UpdateInvoiceRequest struct {
	ClientName        *string `json:"clientName"`
	ClientAddress     *string `json:"clientAddress"`
	ClientEmail       *string `json:"clientEmail"`
	ClientPhoneNumber *string `json:"clientPhoneNumber"`

	BusinessName        *string `json:"businessName"`
	BusinessAddress     *string `json:"businessAddress"`
	BusinessEmail       *string `json:"businessEmail"`
	BusinessPhoneNumber *string `json:"businessPhoneNumber"`
	ABN                 *string `json:"abn"`

	InvoiceDate   *string            `json:"invoiceDate"`
	DueDate       *string            `json:"dueDate"`
	InvoiceNumber *string            `json:"invoiceNumber"`
	InvoiceItems  *[]LineItemRequest `json:"invoiceItems" binding:"omitempty,dive"`
	TaxRate       *decimal.Decimal   `json:"taxRate"`
	IncludeTax    *bool              `json:"includeTax"`
	Discount      *decimal.Decimal   `json:"discount"`
	TemplateType  *string            `json:"templateType" binding:"omitempty,oneof=template1 template2 template3"`
	Status        *string            `json:"status" binding:"omitempty,oneof=Paid Unpaid Overdue"`
}

// HasClientFields reports whether the patch touches the referenced client.
func (r UpdateInvoiceRequest) HasClientFields() bool {
	return r.ClientName != nil || r.ClientAddress != nil || r.ClientEmail != nil || r.ClientPhoneNumber != nil
}

// HasBusinessFields reports whether the patch touches the referenced business.
func (r UpdateInvoiceRequest) HasBusinessFields() bool {
	return r.BusinessName != nil || r.BusinessAddress != nil || r.BusinessEmail != nil ||
		r.BusinessPhoneNumber != nil || r.ABN != nil
}

// InvoiceResponse defines the data returned for a full invoice, with the
// referenced client and business resolved.
type InvoiceResponse struct {
	InvoiceID     string             `json:"invoiceID"`
	InvoiceDate   string             `json:"invoiceDate"`
	DueDate       string             `json:"dueDate"`
	InvoiceNumber string             `json:"invoiceNumber"`
	InvoiceItems  []LineItemResponse `json:"invoiceItems"`
	TaxRate       decimal.Decimal    `json:"taxRate"`
	IncludeTax    bool               `json:"includeTax"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	TemplateType  string             `json:"templateType"`
	Status        string             `json:"status"`
	Client        ClientResponse     `json:"client"`
	Business      BusinessResponse   `json:"business"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// InvoiceSummaryResponse is the listing entry for a user's invoices.
type InvoiceSummaryResponse struct {
	InvoiceID     string    `json:"invoiceID"`
	InvoiceNumber string    `json:"invoiceNumber"`
	ClientName    string    `json:"clientName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InvoiceItemsResponse groups an invoice's items for the items-by-user listing.
type InvoiceItemsResponse struct {
	InvoiceID string             `json:"invoiceID"`
	ItemCount int                `json:"itemCount"`
	Items     []LineItemResponse `json:"items"`
}

// CreateInvoiceResponse pairs the created invoice with the uploaded PDF URL.
type CreateInvoiceResponse struct {
	Invoice InvoiceResponse `json:"invoice"`
	PDFURL  string          `json:"pdfUrl"`
}

// GeneratePDFResponse carries the URL of a freshly rendered document PDF.
type GeneratePDFResponse struct {
	PDFURL string `json:"pdfUrl"`
}

// FetchABNDetailsParams defines query parameters for the ABN lookup proxy.
type FetchABNDetailsParams struct {
	ABN string `form:"abn" binding:"required"`
}

// ToInvoiceResponse converts a domain.Invoice plus its resolved client and
// business to an InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice, client *domain.Client, business *domain.Business) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceItems:  ToListLineItemResponse(inv.Items),
		TaxRate:       inv.TaxRate,
		IncludeTax:    inv.IncludeTax,
		Discount:      inv.Discount,
		Total:         inv.Total,
		TemplateType:  string(inv.TemplateType),
		Status:        string(inv.Status),
		Client:        ToClientResponse(client),
		Business:      ToBusinessResponse(business),
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvoiceSummaryResponse converts a domain.InvoiceSummary to its DTO
func ToInvoiceSummaryResponse(s domain.InvoiceSummary) InvoiceSummaryResponse {
	return InvoiceSummaryResponse{
		InvoiceID:     s.InvoiceID,
		InvoiceNumber: s.InvoiceNumber,
		ClientName:    s.ClientName,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
	}
}

// ToListInvoiceSummaryResponse converts a slice of domain.InvoiceSummary to DTOs
func ToListInvoiceSummaryResponse(summaries []domain.InvoiceSummary) []InvoiceSummaryResponse {
	res := make([]InvoiceSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = ToInvoiceSummaryResponse(s)
	}
	return res
}
