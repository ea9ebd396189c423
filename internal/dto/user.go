package dto

import (
	"github.com/invomate/invomate_app/internal/core/domain"
)

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID          string `json:"userID"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfilePhotoURL string `json:"profilePhotoURL"`
	AuthProvider    string `json:"authProvider"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:          user.UserID,
		Name:            user.Name,
		Email:           user.Email,
		ProfilePhotoURL: user.ProfilePhotoURL,
		AuthProvider:    string(user.AuthProvider),
	}
}

// UpdateUserRequest defines the multipart fields allowed when updating a profile.
// The profile photo arrives as the "profilePhoto" file part alongside these.
type UpdateUserRequest struct {
	Name *string `form:"name"`
}

// FileUpload carries an uploaded file's bytes and metadata from the handler
// into the service layer.
type FileUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}
