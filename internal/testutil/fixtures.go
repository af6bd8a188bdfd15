package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/utils"
	"gorm.io/gorm"
)

// CreateUser inserts a user with a hashed password and returns the record.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.Role) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Skills:       []string{},
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// TokenFor issues a short-lived token for the user, signed with the
// shared test secret.
func TokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := utils.GenerateToken(user.ID, TestJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

// CreatePost inserts a post owned by the given user.
func CreatePost(t *testing.T, db *gorm.DB, author *models.User, title string, category models.Category) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:       uuid.New(),
		Title:    title,
		Content:  "content of " + title,
		Category: category,
		AuthorID: author.ID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

// CreateComment inserts a comment on the given post.
func CreateComment(t *testing.T, db *gorm.DB, post *models.Post, user *models.User, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		ID:      uuid.New(),
		PostID:  post.ID,
		UserID:  user.ID,
		Content: content,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return comment
}

// CreateJob inserts a job posted by the given user.
func CreateJob(t *testing.T, db *gorm.DB, poster *models.User, title, location string) *models.Job {
	t.Helper()

	job := &models.Job{
		ID:             uuid.New(),
		Title:          title,
		Company:        "TelCo",
		Description:    "description of " + title,
		Location:       location,
		RequiredSkills: []string{},
		PostedByID:     poster.ID,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}

// CreateResource inserts a resource uploaded by the given user.
func CreateResource(t *testing.T, db *gorm.DB, uploader *models.User, title, fileURL, publicID string) *models.Resource {
	t.Helper()

	resource := &models.Resource{
		ID:           uuid.New(),
		Title:        title,
		Description:  "description of " + title,
		FileURL:      fileURL,
		FilePublicID: publicID,
		UploadedByID: uploader.ID,
	}
	if err := db.Create(resource).Error; err != nil {
		t.Fatalf("Failed to create test resource: %v", err)
	}
	return resource
}
