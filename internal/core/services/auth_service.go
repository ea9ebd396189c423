package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
	"github.com/invomate/invomate_app/internal/platform/config"
	"github.com/invomate/invomate_app/internal/utils"
)

// resetTokenAudience marks reset tokens so they cannot pass as access tokens.
const resetTokenAudience = "password_reset"

// otpValidity is how long an emailed reset code stays usable.
const otpValidity = 15 * time.Minute

// tokenService implements TokenSvcFacade for issuing and validating JWTs.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateResetToken creates a short-lived token scoped to password reset.
func (s *tokenService) GenerateResetToken(ctx context.Context, user *domain.User) (string, error) {
	return utils.GenerateScopedJWT(user.UserID, s.cfg.JWTSecret, s.cfg.ResetTokenDuration, s.cfg.JWTIssuer, resetTokenAudience)
}

// ValidateResetToken validates a reset token and returns the subject user ID.
func (s *tokenService) ValidateResetToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.NewUnauthorizedError("invalid or expired reset token")
	}

	isResetToken := false
	for _, aud := range claims.Audience {
		if aud == resetTokenAudience {
			isResetToken = true
			break
		}
	}
	if !isResetToken || claims.Subject == "" {
		return "", apperrors.NewUnauthorizedError("invalid reset token")
	}
	return claims.Subject, nil
}

// authService implements the local signup/signin and OTP reset flows.
type authService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	tokenSvc    portssvc.TokenSvcFacade
	emailSender portssvc.EmailSenderSvc
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade, emailSender portssvc.EmailSenderSvc) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		tokenSvc:    tokenSvc,
		emailSender: emailSender,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Signup registers a local account and signs the new user in.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error) {
	if req.Password != req.ConfirmPassword {
		return nil, "", apperrors.NewBadRequestError("passwords do not match")
	}

	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", apperrors.NewBadRequestError("email is already registered")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, "", apperrors.NewBadRequestError("email is already registered")
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, &user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "user signed up", "user_id", user.UserID)
	return &user, token, nil
}

// Signin authenticates email/password credentials. Every failure mode gets
// the same response so callers cannot distinguish unknown emails from wrong
// passwords.
func (s *authService) Signin(ctx context.Context, req dto.SigninRequest) (*domain.User, string, error) {
	invalidCredentials := apperrors.NewUnauthorizedError("invalid email or password")

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", invalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	// OAuth-only accounts have no local password.
	if user.PasswordHash == nil || !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		return nil, "", invalidCredentials
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "user signed in", "user_id", user.UserID)
	return user, token, nil
}

// ForgetPassword issues and emails an OTP. Unknown emails succeed silently so
// the endpoint cannot be used to probe for registered addresses.
func (s *authService) ForgetPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	expiresAt := time.Now().Add(otpValidity)
	if err := s.userRepo.SetResetOTP(ctx, user.UserID, otp, expiresAt); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.emailSender.SendOTPEmail(ctx, user.Email, user.Name, otp); err != nil {
		return fmt.Errorf("failed to email OTP: %w", err)
	}

	s.LogInfo(ctx, "password reset OTP issued", "user_id", user.UserID)
	return nil
}

// VerifyOTP checks the emailed code and exchanges it for a reset token.
func (s *authService) VerifyOTP(ctx context.Context, email string, otp string) (string, error) {
	invalidOTP := apperrors.NewBadRequestError("invalid or expired OTP")

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", invalidOTP
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user.ResetOTP == nil || user.ResetOTPExpiresAt == nil {
		return "", invalidOTP
	}
	if *user.ResetOTP != otp || time.Now().After(*user.ResetOTPExpiresAt) {
		return "", invalidOTP
	}

	if err := s.userRepo.MarkOTPVerified(ctx, user.UserID); err != nil {
		return "", fmt.Errorf("failed to mark OTP verified: %w", err)
	}

	resetToken, err := s.tokenSvc.GenerateResetToken(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	s.LogInfo(ctx, "reset OTP verified", "user_id", user.UserID)
	return resetToken, nil
}

// ResetPassword sets the new password. Requires a valid reset token and a
// previously verified OTP.
func (s *authService) ResetPassword(ctx context.Context, resetToken string, req dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewBadRequestError("passwords do not match")
	}

	userID, err := s.tokenSvc.ValidateResetToken(ctx, resetToken)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewUnauthorizedError("invalid reset token")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.OTPVerified {
		return apperrors.NewBadRequestError("OTP has not been verified")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UserID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.LogInfo(ctx, "password reset completed", "user_id", user.UserID)
	return nil
}
