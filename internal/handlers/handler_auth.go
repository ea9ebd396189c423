package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/invomate/invomate_app/internal/core/domain"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
	"github.com/invomate/invomate_app/internal/middleware"
)

// authHandler handles signup, signin, third-party signin and password resets.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	oauthService portssvc.OAuthSvcFacade
}

func newAuthHandler(authService portssvc.AuthSvcFacade, oauthService portssvc.OAuthSvcFacade) *authHandler {
	return &authHandler{
		authService:  authService,
		oauthService: oauthService,
	}
}

// registerAuthRoutes sets up the public authentication routes, all behind an
// in-memory IP rate limit.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.OAuth)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.GinMiddlewarize(ipLimiter)

	auth := r.Group("/api/v1/auth", limitMiddleware)
	{
		auth.POST("/signup", h.signup)
		auth.POST("/signin", h.signin)
		auth.POST("/oauth/google", h.googleSignin)
		auth.POST("/oauth/facebook", h.facebookSignin)
		auth.POST("/forget-password", h.forgetPassword)
		auth.POST("/verify-otp", h.verifyOTP)
		auth.POST("/reset-password", h.resetPassword)
	}
}

// signup godoc
// @Summary Register a new account
// @Description Creates a local account and returns a JWT with the user profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// signin godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param signin body dto.SigninRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/signin [post]
func (h *authHandler) signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, err := h.authService.Signin(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// googleSignin godoc
// @Summary Sign in with Google
// @Description Accepts either an ID token from the client-side flow or an authorization code from the server-side flow.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.GoogleOAuthRequest true "Google ID token or authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/oauth/google [post]
func (h *authHandler) googleSignin(c *gin.Context) {
	var req dto.GoogleOAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var (
		user  *domain.User
		token string
		err   error
	)
	switch {
	case req.IDToken != "":
		user, token, err = h.oauthService.SigninWithGoogle(c.Request.Context(), req.IDToken)
	case req.Code != "":
		user, token, err = h.oauthService.SigninWithGoogleCode(c.Request.Context(), req.Code)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Either idToken or code is required"})
		return
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// facebookSignin godoc
// @Summary Sign in with a Facebook access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.FacebookOAuthRequest true "Facebook access token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/oauth/facebook [post]
func (h *authHandler) facebookSignin(c *gin.Context) {
	var req dto.FacebookOAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, err := h.oauthService.SigninWithFacebook(c.Request.Context(), req.AccessToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// forgetPassword godoc
// @Summary Start the OTP password reset flow
// @Description Emails a one-time code. Responds 200 whether or not the address is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgetPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Router /auth/forget-password [post]
func (h *authHandler) forgetPassword(c *gin.Context) {
	var req dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.ForgetPassword(c.Request.Context(), req.Email); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to process password reset request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, an OTP has been sent"})
}

// verifyOTP godoc
// @Summary Verify the emailed OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Email and OTP"
// @Success 200 {object} dto.VerifyOTPResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/verify-otp [post]
func (h *authHandler) verifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resetToken, err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyOTPResponse{ResetToken: resetToken})
}

// resetPassword godoc
// @Summary Set a new password
// @Description Requires the reset token from verify-otp.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.ResetToken, req); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
