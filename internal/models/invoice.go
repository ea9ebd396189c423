package models

import "github.com/shopspring/decimal"

// Invoice represents a row in the invoices table.
// Dates are stored as free-form text, exactly as the user supplied them.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	OwnerUserID   string          `db:"owner_user_id"`
	ClientID      string          `db:"client_id"`
	BusinessID    string          `db:"business_id"`
	InvoiceDate   string          `db:"invoice_date"`
	DueDate       string          `db:"due_date"`
	InvoiceNumber string          `db:"invoice_number"`
	TaxRate       decimal.Decimal `db:"tax_rate"`
	IncludeTax    bool            `db:"include_tax"`
	Discount      decimal.Decimal `db:"discount"`
	Total         decimal.Decimal `db:"total"`
	TemplateType  string          `db:"template_type"`
	Status        string          `db:"status"`
	AuditFields
}

// InvoiceItem represents a row in the invoice_items table.
// Position preserves the order items were added in.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	ItemName    string          `db:"item_name"`
	Description string          `db:"description"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Total       decimal.Decimal `db:"total"`
	Position    int             `db:"position"`
}
