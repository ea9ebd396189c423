package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	"github.com/invomate/invomate_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(db *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{BaseRepository{Pool: db}}
}

// Ensure PgxQuoteRepository implements portsrepo.QuoteRepositoryFacade
var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

// Helper to convert domain.Quote to models.Quote (items handled separately)
func toModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:      d.QuoteID,
		OwnerUserID:  d.OwnerUserID,
		ClientID:     d.ClientID,
		BusinessID:   d.BusinessID,
		QuoteDate:    d.QuoteDate,
		DueDate:      d.DueDate,
		QuoteNumber:  d.QuoteNumber,
		TaxRate:      d.TaxRate,
		IncludeTax:   d.IncludeTax,
		Discount:     d.Discount,
		Total:        d.Total,
		TemplateType: string(d.TemplateType),
		Status:       string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Quote plus item rows to domain.Quote
func toDomainQuote(m models.Quote, items []models.QuoteItem) domain.Quote {
	domainItems := make([]domain.LineItem, len(items))
	for i, it := range items {
		domainItems[i] = domain.LineItem{
			ItemID:      it.ItemID,
			ItemName:    it.ItemName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}
	return domain.Quote{
		QuoteID:      m.QuoteID,
		OwnerUserID:  m.OwnerUserID,
		ClientID:     m.ClientID,
		BusinessID:   m.BusinessID,
		QuoteDate:    m.QuoteDate,
		DueDate:      m.DueDate,
		QuoteNumber:  m.QuoteNumber,
		Items:        domainItems,
		TaxRate:      m.TaxRate,
		IncludeTax:   m.IncludeTax,
		Discount:     m.Discount,
		Total:        m.Total,
		TemplateType: domain.TemplateType(m.TemplateType),
		Status:       domain.QuoteStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const quoteColumns = `quote_id, owner_user_id, client_id, business_id, quote_date, due_date, quote_number,
		tax_rate, include_tax, discount, total, template_type, status,
		created_at, created_by, last_updated_at, last_updated_by`

func scanQuote(row pgx.Row) (models.Quote, error) {
	var m models.Quote
	err := row.Scan(
		&m.QuoteID,
		&m.OwnerUserID,
		&m.ClientID,
		&m.BusinessID,
		&m.QuoteDate,
		&m.DueDate,
		&m.QuoteNumber,
		&m.TaxRate,
		&m.IncludeTax,
		&m.Discount,
		&m.Total,
		&m.TemplateType,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const insertQuoteItemQuery = `
	INSERT INTO quote_items (item_id, quote_id, item_name, description, quantity, unit_price, total, position)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelQuote(quote)
	query := `
        INSERT INTO quotes (` + quoteColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err = tx.Exec(ctx, query,
		m.QuoteID, m.OwnerUserID, m.ClientID, m.BusinessID,
		m.QuoteDate, m.DueDate, m.QuoteNumber,
		m.TaxRate, m.IncludeTax, m.Discount, m.Total, m.TemplateType, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert quote "+m.QuoteID, err)
	}

	batch := &pgx.Batch{}
	for pos, item := range quote.Items {
		batch.Queue(insertQuoteItemQuery,
			item.ItemID, quote.QuoteID, item.ItemName, item.Description,
			item.Quantity, item.UnitPrice, item.Total, pos,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range quote.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert quote items", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close item batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelQuote(quote)
	query := `
		UPDATE quotes
		SET quote_date = $3, due_date = $4, quote_number = $5,
		    tax_rate = $6, include_tax = $7, discount = $8, total = $9,
		    template_type = $10, status = $11, last_updated_at = $12, last_updated_by = $13
		WHERE quote_id = $1 AND owner_user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.QuoteID, m.OwnerUserID,
		m.QuoteDate, m.DueDate, m.QuoteNumber,
		m.TaxRate, m.IncludeTax, m.Discount, m.Total,
		m.TemplateType, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update quote "+m.QuoteID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1;`, m.QuoteID); err != nil {
		return apperrors.NewAppError(500, "failed to clear quote items", err)
	}

	batch := &pgx.Batch{}
	for pos, item := range quote.Items {
		batch.Queue(insertQuoteItemQuery,
			item.ItemID, quote.QuoteID, item.ItemName, item.Description,
			item.Quantity, item.UnitPrice, item.Total, pos,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range quote.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert quote items", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close item batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, ownerUserID string, quoteID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM quotes WHERE quote_id = $1 AND owner_user_id = $2;`, quoteID, ownerUserID)
	if err != nil {
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, ownerUserID string, quoteID string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_id = $1 AND owner_user_id = $2;`

	m, err := scanQuote(r.Pool.QueryRow(ctx, query, quoteID, ownerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote by ID %s: %w", quoteID, err)
	}

	itemsQuery := `
		SELECT item_id, quote_id, item_name, description, quantity, unit_price, total, position
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote items: %w", err)
	}
	defer rows.Close()

	var items []models.QuoteItem
	for rows.Next() {
		var it models.QuoteItem
		if err := rows.Scan(&it.ItemID, &it.QuoteID, &it.ItemName, &it.Description, &it.Quantity, &it.UnitPrice, &it.Total, &it.Position); err != nil {
			return nil, fmt.Errorf("failed to scan quote item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote item rows: %w", err)
	}

	d := toDomainQuote(m, items)
	return &d, nil
}

func (r *PgxQuoteRepository) FindQuoteSummariesByUser(ctx context.Context, ownerUserID string) ([]domain.QuoteSummary, error) {
	query := `
		SELECT q.quote_id, q.quote_number, c.name, q.status, q.created_at
		FROM quotes q
		JOIN clients c ON c.client_id = q.client_id
		WHERE q.owner_user_id = $1
		ORDER BY q.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote summaries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.QuoteSummary
	for rows.Next() {
		var s domain.QuoteSummary
		if err := rows.Scan(&s.QuoteID, &s.QuoteNumber, &s.ClientName, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote summary rows: %w", err)
	}
	return summaries, nil
}
