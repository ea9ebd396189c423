package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/idtoken"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/platform/config"
)

// stubUserRepo is an in-memory UserRepositoryFacade keyed by email and
// provider identity, just enough for the OAuth flows.
type stubUserRepo struct {
	byEmail    map[string]*domain.User
	byProvider map[string]*domain.User
	saved      []domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:    map[string]*domain.User{},
		byProvider: map[string]*domain.User{},
	}
}

func (r *stubUserRepo) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	if u, ok := r.byProvider[string(provider)+"/"+providerUserID]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) SaveUser(ctx context.Context, user domain.User) error {
	r.saved = append(r.saved, user)
	r.byEmail[user.Email] = &user
	if user.ProviderUserID != nil {
		r.byProvider[string(user.AuthProvider)+"/"+*user.ProviderUserID] = &user
	}
	return nil
}

func (r *stubUserRepo) UpdateUser(ctx context.Context, user domain.User) error { return nil }

func (r *stubUserRepo) SetResetOTP(ctx context.Context, userID string, otp string, expiresAt time.Time) error {
	return nil
}

func (r *stubUserRepo) MarkOTPVerified(ctx context.Context, userID string) error { return nil }

func (r *stubUserRepo) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	return nil
}

type OAuthServiceInternalTestSuite struct {
	suite.Suite
	userRepo *stubUserRepo
	svc      *oauthService
}

func (suite *OAuthServiceInternalTestSuite) SetupTest() {
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "invomate-test",
		GoogleClientID:    "google-client-id",
		FacebookAppID:     "fb-app-id",
		FacebookAppSecret: "fb-app-secret",
	}
	suite.userRepo = newStubUserRepo()
	tokenSvc := NewTokenService(cfg)
	suite.svc = NewOAuthService(cfg, suite.userRepo, tokenSvc, nil).(*oauthService)
}

func (suite *OAuthServiceInternalTestSuite) TestSigninWithGoogle_CreatesUser() {
	suite.svc.validateGoogleIDToken = func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error) {
		suite.Equal("google-client-id", audience)
		return &idtoken.Payload{
			Subject: "google-123",
			Claims: map[string]any{
				"email":   "pat@example.com",
				"name":    "Pat",
				"picture": "https://lh3.example.com/p.jpg",
			},
		}, nil
	}

	user, token, err := suite.svc.SigninWithGoogle(context.Background(), "fake-id-token")
	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal("pat@example.com", user.Email)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.Require().Len(suite.userRepo.saved, 1)
	suite.Require().NotNil(suite.userRepo.saved[0].ProviderUserID)
	suite.Equal("google-123", *suite.userRepo.saved[0].ProviderUserID)
}

func (suite *OAuthServiceInternalTestSuite) TestSigninWithGoogle_LinksExistingEmail() {
	existing := &domain.User{UserID: "u-1", Email: "pat@example.com", AuthProvider: domain.ProviderLocal}
	suite.userRepo.byEmail["pat@example.com"] = existing

	suite.svc.validateGoogleIDToken = func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "google-123",
			Claims:  map[string]any{"email": "pat@example.com", "name": "Pat"},
		}, nil
	}

	user, _, err := suite.svc.SigninWithGoogle(context.Background(), "fake-id-token")
	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
	suite.Empty(suite.userRepo.saved, "must not create a second account for a known email")
}

func (suite *OAuthServiceInternalTestSuite) TestSigninWithGoogle_InvalidToken() {
	suite.svc.validateGoogleIDToken = func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error) {
		return nil, apperrors.ErrUnauthorized
	}

	_, _, err := suite.svc.SigninWithGoogle(context.Background(), "garbage")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *OAuthServiceInternalTestSuite) TestSigninWithFacebook_Success() {
	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/debug_token":
			w.Write([]byte(`{"data":{"app_id":"fb-app-id","is_valid":true,"user_id":"fb-456"}}`))
		case "/me":
			w.Write([]byte(`{"id":"fb-456","name":"Sam"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer graph.Close()
	suite.svc.graphURL = graph.URL

	user, token, err := suite.svc.SigninWithFacebook(context.Background(), "fb-access-token")
	suite.Require().NoError(err)
	suite.NotEmpty(token)
	// No email released: a stable stand-in keeps the unique constraint happy.
	suite.Equal("facebook-fb-456@noemail.com", user.Email)
	suite.Equal(domain.ProviderFacebook, user.AuthProvider)
}

func (suite *OAuthServiceInternalTestSuite) TestSigninWithFacebook_WrongApp() {
	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"app_id":"someone-elses-app","is_valid":true,"user_id":"fb-456"}}`))
	}))
	defer graph.Close()
	suite.svc.graphURL = graph.URL

	_, _, err := suite.svc.SigninWithFacebook(context.Background(), "fb-access-token")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Empty(suite.userRepo.saved)
}

func TestOAuthServiceInternalTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthServiceInternalTestSuite))
}

func TestFindOrCreateOAuthUser_ProviderMatchWinsOverEmail(t *testing.T) {
	repo := newStubUserRepo()
	providerID := "google-123"
	viaProvider := &domain.User{UserID: "u-provider", Email: "old@example.com"}
	repo.byProvider["GOOGLE/google-123"] = viaProvider
	repo.byEmail["pat@example.com"] = &domain.User{UserID: "u-email"}

	svc := &oauthService{userRepo: repo}
	user, err := svc.findOrCreateOAuthUser(context.Background(), domain.ProviderGoogle, providerID, "Pat", "pat@example.com", "")
	require.NoError(t, err)
	require.Equal(t, "u-provider", user.UserID)
}
