package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns all comments of a post, newest first.
func (r *CommentRepository) ListByPost(postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPost reports how many comments a post has.
func (r *CommentRepository) CountByPost(postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *CommentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}

// DeleteByPost removes every comment of a post. Used by the post delete
// cascade; runs as its own statement, not in a transaction with the post.
func (r *CommentRepository) DeleteByPost(postID uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "post_id = ?", postID).Error
}
