package repositories

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
)

// QuoteReader defines read operations for quote data, owner-scoped.
type QuoteReader interface {
	// FindQuoteByID retrieves a quote with its items.
	FindQuoteByID(ctx context.Context, ownerUserID string, quoteID string) (*domain.Quote, error)

	// FindQuoteSummariesByUser lists a user's quotes joined with the client name.
	FindQuoteSummariesByUser(ctx context.Context, ownerUserID string) ([]domain.QuoteSummary, error)
}

// QuoteWriter defines write operations for quote data
type QuoteWriter interface {
	// SaveQuote persists a new quote together with its items.
	SaveQuote(ctx context.Context, quote domain.Quote) error

	// UpdateQuote updates a quote and replaces its item rows.
	UpdateQuote(ctx context.Context, quote domain.Quote) error

	// DeleteQuote removes a quote and, via cascade, its items.
	DeleteQuote(ctx context.Context, ownerUserID string, quoteID string) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}
