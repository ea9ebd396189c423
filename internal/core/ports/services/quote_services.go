package services

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes
type QuoteReaderSvc interface {
	// GetQuoteByID retrieves a quote with its client and business resolved.
	GetQuoteByID(ctx context.Context, userID string, quoteID string) (*domain.QuoteDetail, error)

	// ListQuotesByUser lists the user's quote summaries.
	ListQuotesByUser(ctx context.Context, userID string) ([]domain.QuoteSummary, error)
}

// QuoteWriterSvc defines write operations for quotes
type QuoteWriterSvc interface {
	// CreateQuote creates a quote, lazily creating its client and business,
	// renders the PDF and uploads it. Returns the detail and PDF URL.
	CreateQuote(ctx context.Context, userID string, req dto.CreateQuoteRequest) (*domain.QuoteDetail, string, error)

	// UpdateQuote applies a partial update, including inline client and
	// business field updates.
	UpdateQuote(ctx context.Context, userID string, quoteID string, req dto.UpdateQuoteRequest) (*domain.QuoteDetail, error)

	// DeleteQuote removes a quote and its items.
	DeleteQuote(ctx context.Context, userID string, quoteID string) error
}

// QuoteConverterSvc defines the quote-to-invoice conversion.
type QuoteConverterSvc interface {
	// ConvertToInvoice copies the quote's financial snapshot into a new
	// invoice. The source quote is left unmodified.
	ConvertToInvoice(ctx context.Context, userID string, quoteID string) (*domain.InvoiceDetail, error)
}

// QuotePDFSvc defines the on-demand PDF generation operation.
type QuotePDFSvc interface {
	// GenerateQuotePDF renders the quote and uploads it, returning the URL.
	GenerateQuotePDF(ctx context.Context, userID string, quoteID string) (string, error)
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
	QuoteConverterSvc
	QuotePDFSvc
}
