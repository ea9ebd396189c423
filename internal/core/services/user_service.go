package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invomate/invomate_app/internal/core/domain"
	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// profilePhotosFolder is where uploaded profile photos land in object storage.
const profilePhotosFolder = "profile_photos"

type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	storage  portssvc.FileStorageSvc
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, storage portssvc.FileStorageSvc) *UserService {
	return &UserService{userRepo: userRepo, storage: storage}
}

// Ensure UserService implements portssvc.UserSvcFacade
var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the user's name and, when a photo is supplied, uploads
// it and stores the resulting URL.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest, photo *dto.FileUpload) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if photo != nil {
		filename := fmt.Sprintf("%s-%s", uuid.NewString(), photo.Filename)
		url, err := s.storage.Upload(ctx, profilePhotosFolder, filename, photo.ContentType, photo.Data)
		if err != nil {
			s.LogError(ctx, err, "profile photo upload failed", "user_id", userID)
			return nil, fmt.Errorf("failed to upload profile photo: %w", err)
		}
		user.ProfilePhotoURL = url
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	s.LogInfo(ctx, "user profile updated", "user_id", userID)
	return user, nil
}
