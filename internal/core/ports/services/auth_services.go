package services

import (
	"context"
	"time"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/dto"
)

// AuthSvcFacade defines the local account flows: signup, signin and the
// OTP-based password reset.
type AuthSvcFacade interface {
	// Signup registers a local account and returns the user with an access token.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error)

	// Signin authenticates email/password credentials and returns the user
	// with an access token. Unknown email and wrong password are the same error.
	Signin(ctx context.Context, req dto.SigninRequest) (*domain.User, string, error)

	// ForgetPassword generates an OTP, stores it with an expiry and emails it.
	// Unknown emails succeed silently.
	ForgetPassword(ctx context.Context, email string) error

	// VerifyOTP checks the emailed OTP and returns a short-lived reset token.
	VerifyOTP(ctx context.Context, email string, otp string) (string, error)

	// ResetPassword sets a new password, authorized by the reset token and a
	// previously verified OTP.
	ResetPassword(ctx context.Context, resetToken string, req dto.ResetPasswordRequest) error
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues an HS256 access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateResetToken issues a short-lived token scoped to password reset.
	GenerateResetToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateResetToken validates a reset token and returns the subject user ID.
	ValidateResetToken(ctx context.Context, tokenString string) (string, error)
}

// OAuthSvcFacade defines the third-party signin flows. Both methods find or
// create the matching user and return it with an access token.
type OAuthSvcFacade interface {
	// SigninWithGoogle validates a Google ID token and signs the user in.
	SigninWithGoogle(ctx context.Context, idToken string) (*domain.User, string, error)

	// SigninWithGoogleCode exchanges a server-side flow authorization code for
	// tokens and signs the user in via the returned ID token.
	SigninWithGoogleCode(ctx context.Context, code string) (*domain.User, string, error)

	// SigninWithFacebook validates a Facebook access token against the Graph
	// API and signs the user in.
	SigninWithFacebook(ctx context.Context, accessToken string) (*domain.User, string, error)
}
