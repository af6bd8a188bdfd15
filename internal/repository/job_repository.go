package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) GetByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("PostedBy").Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// List returns one page of jobs, newest first. A non-empty location is a
// case-insensitive substring filter.
func (r *JobRepository) List(location string, page, limit int) ([]models.Job, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		if location != "" {
			pattern := "%" + strings.ToLower(location) + "%"
			return tx.Where("LOWER(location) LIKE ?", pattern)
		}
		return tx
	}

	var total int64
	if err := filter(r.db.Model(&models.Job{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := filter(r.db).
		Preload("PostedBy").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Save persists the job's own columns. The preloaded poster projection
// is read-only and must never be written back to users.
func (r *JobRepository) Save(job *models.Job) error {
	return r.db.Omit(clause.Associations).Save(job).Error
}

func (r *JobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Job{}, "id = ?", id).Error
}
