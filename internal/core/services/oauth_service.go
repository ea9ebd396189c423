package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/platform/config"
)

const facebookGraphBaseURL = "https://graph.facebook.com"

// oauthService signs users in via Google ID tokens and Facebook access
// tokens, creating the local account on first signin.
type oauthService struct {
	BaseService
	cfg        *config.Config
	userRepo   portsrepo.UserRepositoryFacade
	tokenSvc   portssvc.TokenSvcFacade
	httpClient *http.Client
	graphURL   string

	// oauth2Config drives the server-side authorization code flow.
	oauth2Config *oauth2.Config

	// validateGoogleIDToken is swappable in tests; defaults to idtoken.Validate.
	validateGoogleIDToken func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// NewOAuthService creates a new instance of oauthService. A nil httpClient
// gets a default with a 10s timeout.
func NewOAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade, httpClient *http.Client) portssvc.OAuthSvcFacade {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &oauthService{
		cfg:                   cfg,
		userRepo:              userRepo,
		tokenSvc:              tokenSvc,
		httpClient:            httpClient,
		graphURL:              facebookGraphBaseURL,
		validateGoogleIDToken: idtoken.Validate,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.OAuthSvcFacade = (*oauthService)(nil)

// SigninWithGoogle validates the Google ID token against our client ID and
// finds or creates the matching user.
func (s *oauthService) SigninWithGoogle(ctx context.Context, idTokenString string) (*domain.User, string, error) {
	payload, err := s.validateGoogleIDToken(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		s.LogWarn(ctx, "google ID token validation failed", "error", err.Error())
		return nil, "", apperrors.NewUnauthorizedError("invalid Google ID token")
	}

	info := domain.GoogleUserInfo{ID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		info.Picture = picture
	}
	if info.Email == "" {
		return nil, "", apperrors.NewBadRequestError("Google account has no email")
	}

	user, err := s.findOrCreateOAuthUser(ctx, domain.ProviderGoogle, info.ID, info.Name, info.Email, info.Picture)
	if err != nil {
		return nil, "", err
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return user, token, nil
}

// SigninWithGoogleCode exchanges an authorization code from the server-side
// redirect flow for tokens, then signs in with the returned ID token.
func (s *oauthService) SigninWithGoogleCode(ctx context.Context, code string) (*domain.User, string, error) {
	oauth2Token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "google code exchange failed", "error", err.Error())
		return nil, "", apperrors.NewUnauthorizedError("invalid Google authorization code")
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, "", apperrors.NewUnauthorizedError("Google token response missing ID token")
	}

	return s.SigninWithGoogle(ctx, idTokenString)
}

// SigninWithFacebook validates the access token against the Graph API debug
// endpoint, fetches the profile and finds or creates the matching user.
func (s *oauthService) SigninWithFacebook(ctx context.Context, accessToken string) (*domain.User, string, error) {
	if err := s.verifyFacebookToken(ctx, accessToken); err != nil {
		return nil, "", err
	}

	info, err := s.fetchFacebookProfile(ctx, accessToken)
	if err != nil {
		return nil, "", err
	}

	// Facebook does not always release an email; synthesize a stable stand-in
	// so the account still satisfies the unique email constraint.
	email := info.Email
	if email == "" {
		email = fmt.Sprintf("facebook-%s@noemail.com", info.ID)
	}

	user, err := s.findOrCreateOAuthUser(ctx, domain.ProviderFacebook, info.ID, info.Name, email, "")
	if err != nil {
		return nil, "", err
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return user, token, nil
}

// verifyFacebookToken checks the user access token via debug_token using the
// app token (appID|appSecret) and confirms it was issued for our app.
func (s *oauthService) verifyFacebookToken(ctx context.Context, accessToken string) error {
	appToken := fmt.Sprintf("%s|%s", s.cfg.FacebookAppID, s.cfg.FacebookAppSecret)
	debugURL := fmt.Sprintf("%s/debug_token?input_token=%s&access_token=%s",
		s.graphURL, url.QueryEscape(accessToken), url.QueryEscape(appToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, debugURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build debug_token request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewGatewayTimeoutError("Facebook token validation failed")
	}
	defer resp.Body.Close()

	var debug struct {
		Data struct {
			AppID   string `json:"app_id"`
			IsValid bool   `json:"is_valid"`
			UserID  string `json:"user_id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&debug); err != nil {
		return fmt.Errorf("failed to decode debug_token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !debug.Data.IsValid || debug.Data.AppID != s.cfg.FacebookAppID {
		s.LogWarn(ctx, "facebook token validation failed", "status", resp.StatusCode)
		return apperrors.NewUnauthorizedError("invalid Facebook access token")
	}
	return nil
}

func (s *oauthService) fetchFacebookProfile(ctx context.Context, accessToken string) (*domain.FacebookUserInfo, error) {
	meURL := fmt.Sprintf("%s/me?fields=id,name,email&access_token=%s", s.graphURL, url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, meURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewGatewayTimeoutError("Facebook profile fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUnauthorizedError("invalid Facebook access token")
	}

	var info domain.FacebookUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	if info.ID == "" {
		return nil, apperrors.NewUnauthorizedError("invalid Facebook access token")
	}
	return &info, nil
}

// findOrCreateOAuthUser resolves the provider identity to a local user. The
// match order is provider ID first, then email, so a user who signed up
// locally can sign in with a linked OAuth account on the same address.
func (s *oauthService) findOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, name, email, photoURL string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProvider(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by provider: %w", err)
	}

	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:          userID,
		Name:            name,
		Email:           email,
		ProfilePhotoURL: photoURL,
		AuthProvider:    provider,
		ProviderUserID:  &providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "oauth user created", "user_id", newUser.UserID, "provider", string(provider))
	return &newUser, nil
}
