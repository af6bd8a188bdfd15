package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/storage"
	"github.com/telconnect/telecom-network/internal/validation"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

const resourceFolder = "telecom-network/resources"

type ResourceService struct {
	resources *repository.ResourceRepository
	uploader  storage.Uploader
}

func NewResourceService(resources *repository.ResourceRepository, uploader storage.Uploader) *ResourceService {
	return &ResourceService{resources: resources, uploader: uploader}
}

// ResourcePatch carries the mutable resource fields; empty values leave
// the stored value untouched.
type ResourcePatch struct {
	Title       string
	Description string
}

// Create validates the metadata, then uploads the file, then persists the
// record. An upload failure aborts creation; a record save failure after a
// successful upload leaves the blob behind (surfaced, not rolled back).
func (s *ResourceService) Create(ctx context.Context, caller *models.User, title, description, filePath string) (*models.Resource, error) {
	if err := validation.Resource(title, description).OrNil(); err != nil {
		logger.Log.Warn("Resource validation failed",
			zap.String("caller_id", caller.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := s.uploader.Upload(ctx, filePath, resourceFolder)
	if err != nil {
		logger.Log.Error("Resource upload failed",
			zap.String("caller_id", caller.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	resource := &models.Resource{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		FileURL:      result.URL,
		FilePublicID: result.PublicID,
		UploadedByID: caller.ID,
	}

	if err := s.resources.Create(resource); err != nil {
		logger.Log.Error("Failed to create resource", zap.String("caller_id", caller.ID.String()), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Resource uploaded",
		zap.String("resource_id", resource.ID.String()),
		zap.String("caller_id", caller.ID.String()),
	)

	return s.resources.GetByID(resource.ID)
}

func (s *ResourceService) List(page, limit int) ([]models.Resource, int64, error) {
	resources, total, err := s.resources.List(page, limit)
	if err != nil {
		logger.Log.Error("Failed to list resources", zap.Error(err))
		return nil, 0, err
	}
	return resources, total, nil
}

func (s *ResourceService) Get(id uuid.UUID) (*models.Resource, error) {
	resource, err := s.resources.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch resource", zap.String("resource_id", id.String()), zap.Error(err))
		return nil, err
	}
	if resource == nil {
		return nil, ErrNotFound
	}
	return resource, nil
}

// Update applies a partial update. Uploader or admin only. A non-empty
// filePath replaces the stored file and destroys the old blob best effort.
func (s *ResourceService) Update(ctx context.Context, caller *models.User, id uuid.UUID, patch ResourcePatch, filePath string) (*models.Resource, error) {
	resource, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if resource.UploadedByID != caller.ID && !caller.IsAdmin() {
		logger.Log.Warn("Resource update denied",
			zap.String("resource_id", id.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return nil, ErrForbidden
	}

	if patch.Title != "" {
		resource.Title = patch.Title
	}
	if patch.Description != "" {
		resource.Description = patch.Description
	}

	if err := validation.Resource(resource.Title, resource.Description).OrNil(); err != nil {
		return nil, err
	}

	if filePath != "" {
		result, err := s.uploader.Upload(ctx, filePath, resourceFolder)
		if err != nil {
			logger.Log.Error("Resource re-upload failed",
				zap.String("resource_id", id.String()),
				zap.Error(err),
			)
			return nil, err
		}
		if resource.FilePublicID != "" {
			if err := s.uploader.Delete(ctx, resource.FilePublicID); err != nil {
				logger.Log.Warn("Failed to delete replaced resource file",
					zap.String("public_id", resource.FilePublicID),
					zap.Error(err),
				)
			}
		}
		resource.FileURL = result.URL
		resource.FilePublicID = result.PublicID
	}

	if err := s.resources.Save(resource); err != nil {
		logger.Log.Error("Failed to save resource", zap.String("resource_id", id.String()), zap.Error(err))
		return nil, err
	}

	return s.resources.GetByID(id)
}

// Delete removes a resource. Uploader or admin only. The stored blob is
// destroyed best effort; the record goes away regardless.
func (s *ResourceService) Delete(ctx context.Context, caller *models.User, id uuid.UUID) error {
	resource, err := s.Get(id)
	if err != nil {
		return err
	}

	if resource.UploadedByID != caller.ID && !caller.IsAdmin() {
		logger.Log.Warn("Resource delete denied",
			zap.String("resource_id", id.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return ErrForbidden
	}

	if resource.FilePublicID != "" {
		if err := s.uploader.Delete(ctx, resource.FilePublicID); err != nil {
			logger.Log.Warn("Failed to delete resource file",
				zap.String("public_id", resource.FilePublicID),
				zap.Error(err),
			)
		}
	}

	if err := s.resources.Delete(id); err != nil {
		logger.Log.Error("Failed to delete resource", zap.String("resource_id", id.String()), zap.Error(err))
		return err
	}

	logger.Log.Info("Resource deleted",
		zap.String("resource_id", id.String()),
		zap.String("caller_id", caller.ID.String()),
	)
	return nil
}
