package models

import "database/sql"

// Business represents a row in the businesses table.
type Business struct {
	BusinessID  string         `db:"business_id"`
	OwnerUserID string         `db:"owner_user_id"`
	Name        string         `db:"name"`
	Address     sql.NullString `db:"address"`
	Email       sql.NullString `db:"email"`
	PhoneNumber sql.NullString `db:"phone_number"`
	ABN         sql.NullString `db:"abn"`
	AuditFields
}
