package repositories

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data, owner-scoped.
// A missing row and a row owned by someone else are both ErrNotFound.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its items.
	FindInvoiceByID(ctx context.Context, ownerUserID string, invoiceID string) (*domain.Invoice, error)

	// FindInvoicesByUser retrieves all of a user's invoices with their items.
	FindInvoicesByUser(ctx context.Context, ownerUserID string) ([]domain.Invoice, error)

	// FindInvoiceSummariesByUser lists a user's invoices joined with the client name.
	FindInvoiceSummariesByUser(ctx context.Context, ownerUserID string) ([]domain.InvoiceSummary, error)

	// FindInvoiceSummariesByClient lists a user's invoices for one client.
	FindInvoiceSummariesByClient(ctx context.Context, ownerUserID string, clientID string) ([]domain.InvoiceSummary, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice together with its items.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates an invoice and replaces its item rows.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice and, via cascade, its items.
	DeleteInvoice(ctx context.Context, ownerUserID string, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
