package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table.
// PasswordHash is null for accounts created through an OAuth provider.
type User struct {
	UserID          string         `db:"user_id"`
	Name            string         `db:"name"`
	Email           string         `db:"email"`
	PasswordHash    sql.NullString `db:"password_hash"`
	ProfilePhotoURL sql.NullString `db:"profile_photo_url"`
	AuthProvider    string         `db:"auth_provider"`
	ProviderUserID  sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Password reset fields
	ResetOTP          sql.NullString `db:"reset_otp"`
	ResetOTPExpiresAt sql.NullTime   `db:"reset_otp_expires_at"`
	OTPVerified       bool           `db:"otp_verified"`
}
