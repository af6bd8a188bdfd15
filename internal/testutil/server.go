package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/telconnect/telecom-network/internal/handler"
	"github.com/telconnect/telecom-network/internal/middleware"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/router"
	"github.com/telconnect/telecom-network/internal/service"
	"github.com/telconnect/telecom-network/internal/storage"
	"gorm.io/gorm"
)

// NewServer assembles the complete application against the test database
// and the given blob store fake, mirroring cmd/server wiring.
func NewServer(t *testing.T, db *gorm.DB, uploader storage.Uploader) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	jobRepo := repository.NewJobRepository(db)
	resourceRepo := repository.NewResourceRepository(db)

	authService := service.NewAuthService(userRepo, TestJWTSecret, time.Hour)
	userService := service.NewUserService(userRepo, uploader)
	postService := service.NewPostService(postRepo, commentRepo)
	jobService := service.NewJobService(jobRepo)
	resourceService := service.NewResourceService(resourceRepo, uploader)

	uploadDir := t.TempDir()

	return router.New(
		router.Config{CORSOrigin: "http://localhost:3000"},
		middleware.Auth(userRepo, TestJWTSecret),
		router.Handlers{
			Auth:     handler.NewAuthHandler(authService),
			User:     handler.NewUserHandler(userService, uploadDir),
			Post:     handler.NewPostHandler(postService),
			Job:      handler.NewJobHandler(jobService),
			Resource: handler.NewResourceHandler(resourceService, uploadDir),
		},
	)
}

// MultipartBody builds a multipart form with the given fields and, when
// fileField is non-empty, one attached file.
func MultipartBody(t *testing.T, fields map[string]string, fileField, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Failed to write form field %s: %v", key, err)
		}
	}

	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("Failed to write file content: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType()
}
