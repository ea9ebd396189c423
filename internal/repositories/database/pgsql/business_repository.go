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

type PgxBusinessRepository struct {
	db *pgxpool.Pool
}

func newPgxBusinessRepository(db *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{db: db}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepositoryFacade
var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

// Helper to convert domain.Business to models.Business
func toModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:  d.BusinessID,
		OwnerUserID: d.OwnerUserID,
		Name:        d.Name,
		Address:     nullStringFrom(d.Address),
		Email:       nullStringFrom(d.Email),
		PhoneNumber: nullStringFrom(d.PhoneNumber),
		ABN:         nullStringFrom(d.ABN),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Business to domain.Business
func toDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:  m.BusinessID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Address:     m.Address.String,
		Email:       m.Email.String,
		PhoneNumber: m.PhoneNumber.String,
		ABN:         m.ABN.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const businessColumns = `business_id, owner_user_id, name, address, email, phone_number, abn,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBusiness(row pgx.Row) (models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.OwnerUserID,
		&m.Name,
		&m.Address,
		&m.Email,
		&m.PhoneNumber,
		&m.ABN,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := toModelBusiness(business)
	query := `
        INSERT INTO businesses (business_id, owner_user_id, name, address, email, phone_number, abn,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.BusinessID,
		m.OwnerUserID,
		m.Name,
		m.Address,
		m.Email,
		m.PhoneNumber,
		m.ABN,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save business: %w", err)
	}
	return nil
}

func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	m := toModelBusiness(business)
	query := `
		UPDATE businesses
		SET name = $3, address = $4, email = $5, phone_number = $6, abn = $7, last_updated_at = $8, last_updated_by = $9
		WHERE business_id = $1 AND owner_user_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.BusinessID,
		m.OwnerUserID,
		m.Name,
		m.Address,
		m.Email,
		m.PhoneNumber,
		m.ABN,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update business %s: %w", business.BusinessID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, ownerUserID string, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1 AND owner_user_id = $2;`

	m, err := scanBusiness(r.db.QueryRow(ctx, query, businessID, ownerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}

	d := toDomainBusiness(m)
	return &d, nil
}

func (r *PgxBusinessRepository) FindBusinessByName(ctx context.Context, ownerUserID string, name string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_user_id = $1 AND name = $2;`

	m, err := scanBusiness(r.db.QueryRow(ctx, query, ownerUserID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by name: %w", err)
	}

	d := toDomainBusiness(m)
	return &d, nil
}

func (r *PgxBusinessRepository) SearchBusinessesByName(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE owner_user_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, ownerUserID, fragment, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	defer rows.Close()

	var businesses []domain.Business
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, toDomainBusiness(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}
	return businesses, nil
}
