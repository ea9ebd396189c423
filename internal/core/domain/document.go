package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TemplateType selects one of the fixed PDF layout templates.
type TemplateType string

const (
	Template1 TemplateType = "template1"
	Template2 TemplateType = "template2"
	Template3 TemplateType = "template3"
)

// ValidTemplateType reports whether t names a known layout template.
func ValidTemplateType(t TemplateType) bool {
	switch t {
	case Template1, Template2, Template3:
		return true
	}
	return false
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceUnpaid  InvoiceStatus = "Unpaid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "Draft"
	QuoteSent     QuoteStatus = "Sent"
	QuoteAccepted QuoteStatus = "Accepted"
	QuoteDeclined QuoteStatus = "Declined"
)

// LineItem is one billable row embedded in an invoice or quote. It has no
// lifecycle of its own; Total is maintained as Quantity * UnitPrice by the
// owning document's operations.
type LineItem struct {
	ItemID      string          `json:"itemID"`
	ItemName    string          `json:"itemName"`
	Description string          `json:"description,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice is a user-owned financial document billed to a client on behalf of
// a business. Dates are kept as the caller-supplied strings.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	OwnerUserID   string          `json:"-"`
	ClientID      string          `json:"clientID"`
	BusinessID    string          `json:"businessID"`
	InvoiceDate   string          `json:"invoiceDate"`
	DueDate       string          `json:"dueDate"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Items         []LineItem      `json:"invoiceItems"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	IncludeTax    bool            `json:"includeTax"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	TemplateType  TemplateType    `json:"templateType"`
	Status        InvoiceStatus   `json:"status"`
	AuditFields
}

// Quote is structurally an invoice that has not been committed to billing.
// InvoiceDetail bundles an invoice with its resolved client and business.
// Rendering and full API responses need all three.
type InvoiceDetail struct {
	Invoice  Invoice
	Client   Client
	Business Business
}

// QuoteDetail bundles a quote with its resolved client and business.
type QuoteDetail struct {
	Quote    Quote
	Client   Client
	Business Business
}

// InvoiceSummary is the listing projection for a user's invoices: enough to
// render an index row without loading items.
type InvoiceSummary struct {
	InvoiceID     string
	InvoiceNumber string
	ClientName    string
	Status        InvoiceStatus
	CreatedAt     time.Time
}

// QuoteSummary is the listing projection for a user's quotes.
type QuoteSummary struct {
	QuoteID     string
	QuoteNumber string
	ClientName  string
	Status      QuoteStatus
	CreatedAt   time.Time
}

type Quote struct {
	QuoteID      string          `json:"quoteID"`
	OwnerUserID  string          `json:"-"`
	ClientID     string          `json:"clientID"`
	BusinessID   string          `json:"businessID"`
	QuoteDate    string          `json:"quoteDate"`
	DueDate      string          `json:"dueDate"`
	QuoteNumber  string          `json:"quoteNumber"`
	Items        []LineItem      `json:"quoteItems"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	IncludeTax   bool            `json:"includeTax"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	TemplateType TemplateType    `json:"templateType"`
	Status       QuoteStatus     `json:"status"`
	AuditFields
}
