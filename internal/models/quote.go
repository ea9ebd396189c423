package models

import "github.com/shopspring/decimal"

// Quote represents a row in the quotes table.
type Quote struct {
	QuoteID      string          `db:"quote_id"`
	OwnerUserID  string          `db:"owner_user_id"`
	ClientID     string          `db:"client_id"`
	BusinessID   string          `db:"business_id"`
	QuoteDate    string          `db:"quote_date"`
	DueDate      string          `db:"due_date"`
	QuoteNumber  string          `db:"quote_number"`
	TaxRate      decimal.Decimal `db:"tax_rate"`
	IncludeTax   bool            `db:"include_tax"`
	Discount     decimal.Decimal `db:"discount"`
	Total        decimal.Decimal `db:"total"`
	TemplateType string          `db:"template_type"`
	Status       string          `db:"status"`
	AuditFields
}

// QuoteItem represents a row in the quote_items table.
type QuoteItem struct {
	ItemID      string          `db:"item_id"`
	QuoteID     string          `db:"quote_id"`
	ItemName    string          `db:"item_name"`
	Description string          `db:"description"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Total       decimal.Decimal `db:"total"`
	Position    int             `db:"position"`
}
