package testutil

import (
	"context"
	"fmt"

	"github.com/telconnect/telecom-network/internal/storage"
)

// UploadCall records one Upload invocation on the fake.
type UploadCall struct {
	LocalPath string
	Folder    string
}

// FakeUploader is an in-memory stand-in for the blob store.
type FakeUploader struct {
	Uploads    []UploadCall
	Deletes    []string
	FailUpload bool
	FailDelete bool
}

func (f *FakeUploader) Upload(_ context.Context, localPath, folder string) (*storage.UploadResult, error) {
	if f.FailUpload {
		return nil, fmt.Errorf("%w: blob store unavailable", storage.ErrUploadFailed)
	}
	f.Uploads = append(f.Uploads, UploadCall{LocalPath: localPath, Folder: folder})
	n := len(f.Uploads)
	return &storage.UploadResult{
		URL:      fmt.Sprintf("https://blobs.test/%s/file-%d", folder, n),
		PublicID: fmt.Sprintf("%s/file-%d", folder, n),
	}, nil
}

func (f *FakeUploader) Delete(_ context.Context, publicID string) error {
	if f.FailDelete {
		return fmt.Errorf("destroy failed for %s", publicID)
	}
	f.Deletes = append(f.Deletes, publicID)
	return nil
}
