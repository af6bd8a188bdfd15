package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post with its author projection populated.
func (r *PostRepository) GetByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List returns one page of posts, newest first, optionally filtered by
// exact category, plus the total match count for the pagination envelope.
func (r *PostRepository) List(category models.Category, page, limit int) ([]models.Post, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		if category != "" {
			return tx.Where("category = ?", category)
		}
		return tx
	}

	var total int64
	if err := filter(r.db.Model(&models.Post{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := filter(r.db).
		Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Save persists the post's own columns. The preloaded author projection
// is read-only and must never be written back to users.
func (r *PostRepository) Save(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

func (r *PostRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}
