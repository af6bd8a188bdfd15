package handler

import (
	"mime/multipart"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// spoolUpload writes the multipart file to a local path under dir so the
// blob store adapter can read it. Callers remove the file when done.
func spoolUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	path := filepath.Join(dir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
