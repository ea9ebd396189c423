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

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: db}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// Helper to convert domain.Invoice to models.Invoice (items handled separately)
func toModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		OwnerUserID:   d.OwnerUserID,
		ClientID:      d.ClientID,
		BusinessID:    d.BusinessID,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		InvoiceNumber: d.InvoiceNumber,
		TaxRate:       d.TaxRate,
		IncludeTax:    d.IncludeTax,
		Discount:      d.Discount,
		Total:         d.Total,
		TemplateType:  string(d.TemplateType),
		Status:        string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Invoice plus item rows to domain.Invoice
func toDomainInvoice(m models.Invoice, items []models.InvoiceItem) domain.Invoice {
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
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		OwnerUserID:   m.OwnerUserID,
		ClientID:      m.ClientID,
		BusinessID:    m.BusinessID,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		InvoiceNumber: m.InvoiceNumber,
		Items:         domainItems,
		TaxRate:       m.TaxRate,
		IncludeTax:    m.IncludeTax,
		Discount:      m.Discount,
		Total:         m.Total,
		TemplateType:  domain.TemplateType(m.TemplateType),
		Status:        domain.InvoiceStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const invoiceColumns = `invoice_id, owner_user_id, client_id, business_id, invoice_date, due_date, invoice_number,
		tax_rate, include_tax, discount, total, template_type, status,
		created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.OwnerUserID,
		&m.ClientID,
		&m.BusinessID,
		&m.InvoiceDate,
		&m.DueDate,
		&m.InvoiceNumber,
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

const insertInvoiceItemQuery = `
	INSERT INTO invoice_items (item_id, invoice_id, item_name, description, quantity, unit_price, total, position)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelInvoice(invoice)
	query := `
        INSERT INTO invoices (` + invoiceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err = tx.Exec(ctx, query,
		m.InvoiceID, m.OwnerUserID, m.ClientID, m.BusinessID,
		m.InvoiceDate, m.DueDate, m.InvoiceNumber,
		m.TaxRate, m.IncludeTax, m.Discount, m.Total, m.TemplateType, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	for pos, item := range invoice.Items {
		batch.Queue(insertInvoiceItemQuery,
			item.ItemID, invoice.InvoiceID, item.ItemName, item.Description,
			item.Quantity, item.UnitPrice, item.Total, pos,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range invoice.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert invoice items", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close item batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET invoice_date = $3, due_date = $4, invoice_number = $5,
		    tax_rate = $6, include_tax = $7, discount = $8, total = $9,
		    template_type = $10, status = $11, last_updated_at = $12, last_updated_by = $13
		WHERE invoice_id = $1 AND owner_user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.InvoiceID, m.OwnerUserID,
		m.InvoiceDate, m.DueDate, m.InvoiceNumber,
		m.TaxRate, m.IncludeTax, m.Discount, m.Total,
		m.TemplateType, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Item rows are replaced wholesale; position reflects the new order.
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, m.InvoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to clear invoice items", err)
	}

	batch := &pgx.Batch{}
	for pos, item := range invoice.Items {
		batch.Queue(insertInvoiceItemQuery,
			item.ItemID, invoice.InvoiceID, item.ItemName, item.Description,
			item.Quantity, item.UnitPrice, item.Total, pos,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range invoice.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert invoice items", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close item batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, ownerUserID string, invoiceID string) error {
	// Item rows go with the invoice via ON DELETE CASCADE.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1 AND owner_user_id = $2;`, invoiceID, ownerUserID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, ownerUserID string, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 AND owner_user_id = $2;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID, ownerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	items, err := r.findItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	d := toDomainInvoice(m, items)
	return &d, nil
}

func (r *PgxInvoiceRepository) findItems(ctx context.Context, invoiceID string) ([]models.InvoiceItem, error) {
	query := `
		SELECT item_id, invoice_id, item_name, description, quantity, unit_price, total, position
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice items: %w", err)
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		var it models.InvoiceItem
		if err := rows.Scan(&it.ItemID, &it.InvoiceID, &it.ItemName, &it.Description, &it.Quantity, &it.UnitPrice, &it.Total, &it.Position); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice item rows: %w", err)
	}
	return items, nil
}

func (r *PgxInvoiceRepository) FindInvoicesByUser(ctx context.Context, ownerUserID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner_user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var modelInvoices []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	// One items query for all invoices, grouped in memory.
	itemsQuery := `
		SELECT it.item_id, it.invoice_id, it.item_name, it.description, it.quantity, it.unit_price, it.total, it.position
		FROM invoice_items it
		JOIN invoices i ON i.invoice_id = it.invoice_id
		WHERE i.owner_user_id = $1
		ORDER BY it.invoice_id, it.position;
	`
	itemRows, err := r.Pool.Query(ctx, itemsQuery, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice items: %w", err)
	}
	defer itemRows.Close()

	itemsByInvoice := make(map[string][]models.InvoiceItem)
	for itemRows.Next() {
		var it models.InvoiceItem
		if err := itemRows.Scan(&it.ItemID, &it.InvoiceID, &it.ItemName, &it.Description, &it.Quantity, &it.UnitPrice, &it.Total, &it.Position); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		itemsByInvoice[it.InvoiceID] = append(itemsByInvoice[it.InvoiceID], it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice item rows: %w", err)
	}

	invoices := make([]domain.Invoice, len(modelInvoices))
	for i, m := range modelInvoices {
		invoices[i] = toDomainInvoice(m, itemsByInvoice[m.InvoiceID])
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) FindInvoiceSummariesByUser(ctx context.Context, ownerUserID string) ([]domain.InvoiceSummary, error) {
	query := `
		SELECT i.invoice_id, i.invoice_number, c.name, i.status, i.created_at
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.owner_user_id = $1
		ORDER BY i.created_at DESC;
	`
	return r.querySummaries(ctx, query, ownerUserID)
}

func (r *PgxInvoiceRepository) FindInvoiceSummariesByClient(ctx context.Context, ownerUserID string, clientID string) ([]domain.InvoiceSummary, error) {
	query := `
		SELECT i.invoice_id, i.invoice_number, c.name, i.status, i.created_at
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.owner_user_id = $1 AND i.client_id = $2
		ORDER BY i.created_at DESC;
	`
	return r.querySummaries(ctx, query, ownerUserID, clientID)
}

func (r *PgxInvoiceRepository) querySummaries(ctx context.Context, query string, args ...any) ([]domain.InvoiceSummary, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice summaries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.InvoiceSummary
	for rows.Next() {
		var s domain.InvoiceSummary
		if err := rows.Scan(&s.InvoiceID, &s.InvoiceNumber, &s.ClientName, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invoice summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice summary rows: %w", err)
	}
	return summaries, nil
}
