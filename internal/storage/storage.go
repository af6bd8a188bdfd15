// Package storage adapts the external blob store. Upload returns a durable
// URL plus an opaque public id that can be used to destroy the blob later.
package storage

import (
	"context"
	"errors"
)

var ErrUploadFailed = errors.New("upload failed")

// UploadResult is what the blob store hands back for a stored file.
type UploadResult struct {
	URL      string
	PublicID string
}

// Uploader is the blob store contract. Handlers spool the multipart file to
// a local path first; Upload ships it to remote storage under folder.
type Uploader interface {
	Upload(ctx context.Context, localPath, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
