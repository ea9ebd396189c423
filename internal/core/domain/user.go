package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal    AuthProvider = "LOCAL"
	ProviderGoogle   AuthProvider = "GOOGLE"
	ProviderFacebook AuthProvider = "FACEBOOK"
)

// User represents a user of the application in the domain.
// A user is either local (email + password hash) or linked to an OAuth
// provider, in which case PasswordHash is nil.
type User struct {
	UserID          string       `json:"userID"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	PasswordHash    *string      `json:"-"`
	ProfilePhotoURL string       `json:"profilePhoto,omitempty"`
	AuthProvider    AuthProvider `json:"authProvider"`
	ProviderUserID  *string      `json:"-"` // Google sub / Facebook id

	// Password reset via emailed OTP
	ResetOTP          *string    `json:"-"`
	ResetOTPExpiresAt *time.Time `json:"-"`
	OTPVerified       bool       `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// GoogleUserInfo mirrors the claims we consume from a verified Google ID token.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// FacebookUserInfo mirrors the fields fetched from the Graph API /me endpoint.
type FacebookUserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
