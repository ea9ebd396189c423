package models

import "database/sql"

// Client represents a row in the clients table.
// Name is unique per owning user; contact columns are nullable.
type Client struct {
	ClientID    string         `db:"client_id"`
	OwnerUserID string         `db:"owner_user_id"`
	Name        string         `db:"name"`
	Address     sql.NullString `db:"address"`
	Email       sql.NullString `db:"email"`
	PhoneNumber sql.NullString `db:"phone_number"`
	AuditFields
}
