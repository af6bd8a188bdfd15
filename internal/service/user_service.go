package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/storage"
	"github.com/telconnect/telecom-network/internal/utils"
	"github.com/telconnect/telecom-network/internal/validation"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

const profileImageFolder = "telecom-network/profiles"

type UserService struct {
	users    *repository.UserRepository
	uploader storage.Uploader
}

func NewUserService(users *repository.UserRepository, uploader storage.Uploader) *UserService {
	return &UserService{users: users, uploader: uploader}
}

// ProfilePatch carries the mutable profile fields of a user. Empty strings
// and nil slices leave the stored value untouched; Experience is a pointer
// so an explicit zero still overwrites.
type ProfilePatch struct {
	Name           string
	Specialization string
	Experience     *int
	Skills         []string
	Bio            string
	Location       string
	Password       string
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch user", zap.String("user_id", id.String()), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns all users, newest first. Routed admin-only.
func (s *UserService) List() ([]models.User, error) {
	users, err := s.users.GetAll()
	if err != nil {
		logger.Log.Error("Failed to fetch users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// UpdateProfile applies a partial update to the caller's own record.
// A non-empty imagePath replaces the profile image through the blob store.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, patch ProfilePatch, imagePath string) (*models.User, error) {
	if err := validation.UserProfile(patch.Experience, patch.Bio, patch.Password).OrNil(); err != nil {
		logger.Log.Warn("Profile validation failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Specialization != "" {
		user.Specialization = patch.Specialization
	}
	if patch.Experience != nil {
		user.Experience = *patch.Experience
	}
	if patch.Skills != nil {
		user.Skills = patch.Skills
	}
	if patch.Bio != "" {
		user.Bio = patch.Bio
	}
	if patch.Location != "" {
		user.Location = patch.Location
	}

	if patch.Password != "" {
		hashed, err := utils.HashPassword(patch.Password)
		if err != nil {
			logger.Log.Error("Failed to hash password", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if imagePath != "" {
		result, err := s.uploader.Upload(ctx, imagePath, profileImageFolder)
		if err != nil {
			logger.Log.Error("Profile image upload failed",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
		if user.ProfileImageID != "" {
			// Best effort: an orphaned blob must not fail the update
			if err := s.uploader.Delete(ctx, user.ProfileImageID); err != nil {
				logger.Log.Warn("Failed to delete replaced profile image",
					zap.String("public_id", user.ProfileImageID),
					zap.Error(err),
				)
			}
		}
		user.ProfileImage = result.URL
		user.ProfileImageID = result.PublicID
	}

	if err := s.users.Save(user); err != nil {
		logger.Log.Error("Failed to save user", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Profile updated", zap.String("user_id", user.ID.String()))

	return user, nil
}

// Delete removes a user record. Routed admin-only; the user's posts, jobs
// and resources are left in place.
func (s *UserService) Delete(id uuid.UUID) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch user", zap.String("user_id", id.String()), zap.Error(err))
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := s.users.Delete(id); err != nil {
		logger.Log.Error("Failed to delete user", zap.String("user_id", id.String()), zap.Error(err))
		return err
	}

	logger.Log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
