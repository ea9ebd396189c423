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

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{db: db}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// Helper to convert domain.Client to models.Client
func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		OwnerUserID: d.OwnerUserID,
		Name:        d.Name,
		Address:     nullStringFrom(d.Address),
		Email:       nullStringFrom(d.Email),
		PhoneNumber: nullStringFrom(d.PhoneNumber),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Client to domain.Client
func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Address:     m.Address.String,
		Email:       m.Email.String,
		PhoneNumber: m.PhoneNumber.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const clientColumns = `client_id, owner_user_id, name, address, email, phone_number,
		created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.OwnerUserID,
		&m.Name,
		&m.Address,
		&m.Email,
		&m.PhoneNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
        INSERT INTO clients (client_id, owner_user_id, name, address, email, phone_number,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.OwnerUserID,
		m.Name,
		m.Address,
		m.Email,
		m.PhoneNumber,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		UPDATE clients
		SET name = $3, address = $4, email = $5, phone_number = $6, last_updated_at = $7, last_updated_by = $8
		WHERE client_id = $1 AND owner_user_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.OwnerUserID,
		m.Name,
		m.Address,
		m.Email,
		m.PhoneNumber,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, ownerUserID string, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1 AND owner_user_id = $2;`

	m, err := scanClient(r.db.QueryRow(ctx, query, clientID, ownerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	d := toDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) FindClientByName(ctx context.Context, ownerUserID string, name string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE owner_user_id = $1 AND name = $2;`

	m, err := scanClient(r.db.QueryRow(ctx, query, ownerUserID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by name: %w", err)
	}

	d := toDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) SearchClientsByName(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE owner_user_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, ownerUserID, fragment, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) FindClientsWithInvoiceCounts(ctx context.Context, ownerUserID string) ([]domain.ClientWithInvoiceCount, error) {
	query := `
		SELECT c.client_id, c.name, COUNT(i.invoice_id) AS invoice_count
		FROM clients c
		LEFT JOIN invoices i ON i.client_id = c.client_id AND i.owner_user_id = c.owner_user_id
		WHERE c.owner_user_id = $1
		GROUP BY c.client_id, c.name
		ORDER BY c.name;
	`
	rows, err := r.db.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients with invoice counts: %w", err)
	}
	defer rows.Close()

	var result []domain.ClientWithInvoiceCount
	for rows.Next() {
		var c domain.ClientWithInvoiceCount
		if err := rows.Scan(&c.ClientID, &c.Name, &c.InvoiceCount); err != nil {
			return nil, fmt.Errorf("failed to scan client count row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client count rows: %w", err)
	}
	return result, nil
}
