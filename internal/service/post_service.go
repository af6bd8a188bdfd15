package service

import (
	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/validation"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

type PostService struct {
	posts    *repository.PostRepository
	comments *repository.CommentRepository
}

func NewPostService(posts *repository.PostRepository, comments *repository.CommentRepository) *PostService {
	return &PostService{posts: posts, comments: comments}
}

// PostPatch carries the mutable post fields; empty values leave the stored
// value untouched.
type PostPatch struct {
	Title    string
	Content  string
	Category models.Category
}

func (s *PostService) Create(author *models.User, title, content string, category models.Category) (*models.Post, error) {
	if err := validation.Post(title, content, category).OrNil(); err != nil {
		logger.Log.Warn("Post validation failed",
			zap.String("author_id", author.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	post := &models.Post{
		ID:       uuid.New(),
		Title:    title,
		Content:  content,
		Category: category,
		AuthorID: author.ID,
	}

	if err := s.posts.Create(post); err != nil {
		logger.Log.Error("Failed to create post", zap.String("author_id", author.ID.String()), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("author_id", author.ID.String()),
		zap.String("category", string(category)),
	)

	// Reload with the author projection populated
	return s.posts.GetByID(post.ID)
}

func (s *PostService) List(category models.Category, page, limit int) ([]models.Post, int64, error) {
	posts, total, err := s.posts.List(category, page, limit)
	if err != nil {
		logger.Log.Error("Failed to list posts", zap.Error(err))
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostService) Get(id uuid.UUID) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch post", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Update applies a partial update. Posts are edited by their author only;
// admins moderate through delete, not edit.
func (s *PostService) Update(caller *models.User, id uuid.UUID, patch PostPatch) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != caller.ID {
		logger.Log.Warn("Post update denied",
			zap.String("post_id", id.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return nil, ErrForbidden
	}

	if patch.Title != "" {
		post.Title = patch.Title
	}
	if patch.Content != "" {
		post.Content = patch.Content
	}
	if patch.Category != "" {
		post.Category = patch.Category
	}

	if err := validation.Post(post.Title, post.Content, post.Category).OrNil(); err != nil {
		return nil, err
	}

	if err := s.posts.Save(post); err != nil {
		logger.Log.Error("Failed to save post", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}

	return s.posts.GetByID(id)
}

// Delete removes a post and all of its comments. Author or admin only.
// The two deletes are independent statements; a crash in between leaves
// orphaned comments, which is accepted for this domain.
func (s *PostService) Delete(caller *models.User, id uuid.UUID) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}

	if post.AuthorID != caller.ID && !caller.IsAdmin() {
		logger.Log.Warn("Post delete denied",
			zap.String("post_id", id.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return ErrForbidden
	}

	if err := s.comments.DeleteByPost(id); err != nil {
		logger.Log.Error("Failed to delete post comments", zap.String("post_id", id.String()), zap.Error(err))
		return err
	}

	if err := s.posts.Delete(id); err != nil {
		logger.Log.Error("Failed to delete post", zap.String("post_id", id.String()), zap.Error(err))
		return err
	}

	logger.Log.Info("Post deleted",
		zap.String("post_id", id.String()),
		zap.String("caller_id", caller.ID.String()),
	)
	return nil
}

// AddComment attaches a comment to an existing post.
func (s *PostService) AddComment(caller *models.User, postID uuid.UUID, content string) (*models.Comment, error) {
	if err := validation.Comment(content).OrNil(); err != nil {
		return nil, err
	}

	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:      uuid.New(),
		PostID:  post.ID,
		UserID:  caller.ID,
		Content: content,
	}

	if err := s.comments.Create(comment); err != nil {
		logger.Log.Error("Failed to create comment", zap.String("post_id", postID.String()), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Comment added",
		zap.String("comment_id", comment.ID.String()),
		zap.String("post_id", postID.String()),
	)

	return s.comments.GetByID(comment.ID)
}

// ListComments returns every comment of a post, newest first. A missing
// post yields an empty list rather than an error.
func (s *PostService) ListComments(postID uuid.UUID) ([]models.Comment, error) {
	comments, err := s.comments.ListByPost(postID)
	if err != nil {
		logger.Log.Error("Failed to list comments", zap.String("post_id", postID.String()), zap.Error(err))
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a single comment. Comment author or admin only.
func (s *PostService) DeleteComment(caller *models.User, commentID uuid.UUID) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		logger.Log.Error("Failed to fetch comment", zap.String("comment_id", commentID.String()), zap.Error(err))
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	if comment.UserID != caller.ID && !caller.IsAdmin() {
		logger.Log.Warn("Comment delete denied",
			zap.String("comment_id", commentID.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return ErrForbidden
	}

	if err := s.comments.Delete(commentID); err != nil {
		logger.Log.Error("Failed to delete comment", zap.String("comment_id", commentID.String()), zap.Error(err))
		return err
	}

	return nil
}
