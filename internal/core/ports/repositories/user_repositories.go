package repositories

import (
	"context"
	"time"

	"github.com/invomate/invomate_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProvider retrieves a user by OAuth provider and provider-side ID.
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile details.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserPasswordResetManager defines operations backing the OTP reset flow.
type UserPasswordResetManager interface {
	// SetResetOTP stores an OTP and its expiry, clearing any prior verification.
	SetResetOTP(ctx context.Context, userID string, otp string, expiresAt time.Time) error

	// MarkOTPVerified flags the stored OTP as verified.
	MarkOTPVerified(ctx context.Context, userID string) error

	// UpdatePassword replaces the password hash and clears all OTP state.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserPasswordResetManager
}
