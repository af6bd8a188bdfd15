package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements Uploader on top of the Cloudinary API.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a store from a cloudinary:// URL carrying the
// cloud name and credentials.
func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{client: client}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, localPath, folder string) (*UploadResult, error) {
	resp, err := s.client.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, resp.Error.Message)
	}

	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	resp, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return errors.New("cloudinary destroy: " + resp.Result)
	}
	return nil
}
