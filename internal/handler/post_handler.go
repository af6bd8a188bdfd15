package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/telconnect/telecom-network/internal/middleware"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/service"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type PostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.postService.Create(user, req.Title, req.Content, models.Category(req.Category))
	if err != nil {
		serviceError(c, err, "", "", "Server error creating post.")
		return
	}

	respondData(c, http.StatusCreated, "Post created successfully.", post)
}

func (h *PostHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	category := models.Category(c.Query("category"))

	posts, total, err := h.postService.List(category, page, limit)
	if err != nil {
		serviceError(c, err, "", "", "Server error fetching posts.")
		return
	}

	respondPage(c, len(posts), total, page, limit, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		serviceError(c, err, "Post not found.", "", "Server error fetching post.")
		return
	}

	respondData(c, http.StatusOK, "", post)
}

func (h *PostHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.postService.Update(user, id, service.PostPatch{
		Title:    req.Title,
		Content:  req.Content,
		Category: models.Category(req.Category),
	})
	if err != nil {
		serviceError(c, err,
			"Post not found.",
			"You are not authorized to update this post.",
			"Server error updating post.")
		return
	}

	respondData(c, http.StatusOK, "Post updated successfully.", post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	if err := h.postService.Delete(user, id); err != nil {
		serviceError(c, err,
			"Post not found.",
			"You are not authorized to delete this post.",
			"Server error deleting post.")
		return
	}

	respondData(c, http.StatusOK, "Post deleted successfully.", nil)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Content == "" {
		respondError(c, http.StatusBadRequest, "Please provide comment content.")
		return
	}

	comment, err := h.postService.AddComment(user, id, req.Content)
	if err != nil {
		serviceError(c, err, "Post not found.", "", "Server error adding comment.")
		return
	}

	respondData(c, http.StatusCreated, "Comment added successfully.", comment)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	comments, err := h.postService.ListComments(id)
	if err != nil {
		serviceError(c, err, "", "", "Server error fetching comments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(comments),
		"data":    comments,
	})
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	commentID, ok := pathID(c, "commentId")
	if !ok {
		respondError(c, http.StatusNotFound, "Comment not found.")
		return
	}

	if err := h.postService.DeleteComment(user, commentID); err != nil {
		serviceError(c, err,
			"Comment not found.",
			"You are not authorized to delete this comment.",
			"Server error deleting comment.")
		return
	}

	respondData(c, http.StatusOK, "Comment deleted successfully.", nil)
}
