package pgsql

import (
	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		ClientRepo:   newPgxClientRepository(dbPool),
		BusinessRepo: newPgxBusinessRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		QuoteRepo:    newPgxQuoteRepository(dbPool),
	}
}
