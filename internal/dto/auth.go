package dto

// SignupRequest defines the data needed to register a local account.
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// SigninRequest defines the credentials for a local login.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleOAuthRequest carries the Google sign-in credential: either the ID
// token from a client-side flow, or the authorization code from the
// server-side redirect flow. Exactly one must be set.
type GoogleOAuthRequest struct {
	IDToken string `json:"idToken"`
	Code    string `json:"code"`
}

// FacebookOAuthRequest carries the user access token from the Facebook login flow.
type FacebookOAuthRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

// ForgetPasswordRequest starts the OTP reset flow.
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest checks the emailed OTP and exchanges it for a reset token.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest sets a new password; authorized by the reset token
// issued from a successful OTP verification.
type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// AuthResponse is returned by every successful signin/signup variant.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// VerifyOTPResponse carries the short-lived reset token.
type VerifyOTPResponse struct {
	ResetToken string `json:"resetToken"`
}
