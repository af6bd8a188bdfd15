package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *ResourceRepository) GetByID(id uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.Preload("UploadedBy").Where("id = ?", id).First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

// List returns one page of resources, newest first.
func (r *ResourceRepository) List(page, limit int) ([]models.Resource, int64, error) {
	var total int64
	if err := r.db.Model(&models.Resource{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var resources []models.Resource
	err := r.db.
		Preload("UploadedBy").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&resources).Error
	if err != nil {
		return nil, 0, err
	}

	return resources, total, nil
}

// Save persists the resource's own columns. The preloaded uploader
// projection is read-only and must never be written back to users.
func (r *ResourceRepository) Save(resource *models.Resource) error {
	return r.db.Omit(clause.Associations).Save(resource).Error
}

func (r *ResourceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Resource{}, "id = ?", id).Error
}
