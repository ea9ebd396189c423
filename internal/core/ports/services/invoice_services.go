package services

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its client and business resolved.
	GetInvoiceByID(ctx context.Context, userID string, invoiceID string) (*domain.InvoiceDetail, error)

	// ListInvoicesByUser lists the user's invoice summaries.
	ListInvoicesByUser(ctx context.Context, userID string) ([]domain.InvoiceSummary, error)

	// ListInvoicesWithItemsByUser retrieves the user's invoices with full item lists.
	ListInvoicesWithItemsByUser(ctx context.Context, userID string) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice creates an invoice, lazily creating its client and
	// business, renders the PDF and uploads it. Returns the detail and PDF URL.
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.InvoiceDetail, string, error)

	// UpdateInvoice applies a partial update, including inline client and
	// business field updates. Totals are recomputed when items are replaced.
	UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.InvoiceDetail, error)

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, userID string, invoiceID string) error
}

// InvoicePDFSvc defines the on-demand PDF generation operation.
type InvoicePDFSvc interface {
	// GenerateInvoicePDF renders the invoice and uploads it, returning the URL.
	GenerateInvoicePDF(ctx context.Context, userID string, invoiceID string) (string, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoicePDFSvc
}

// ItemSvcFacade defines line-item operations on an invoice. Every mutation
// recomputes the item total and then the whole document total.
type ItemSvcFacade interface {
	// AddItem appends a line item to the invoice.
	AddItem(ctx context.Context, userID string, invoiceID string, req dto.LineItemRequest) (*domain.LineItem, error)

	// ListItems returns the invoice's line items in order.
	ListItems(ctx context.Context, userID string, invoiceID string) ([]domain.LineItem, error)

	// GetItemByID retrieves a single line item.
	GetItemByID(ctx context.Context, userID string, invoiceID string, itemID string) (*domain.LineItem, error)

	// UpdateItem applies a partial update to a line item.
	UpdateItem(ctx context.Context, userID string, invoiceID string, itemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error)

	// DeleteItem removes a line item from the invoice.
	DeleteItem(ctx context.Context, userID string, invoiceID string, itemID string) error
}
