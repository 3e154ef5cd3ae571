package media

import (
	"context"
	"fmt"

	"ironhorse/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaService stores product photos.
type MediaService interface {
	// UploadImage uploads a local file into the given folder and
	// returns its public HTTPS URL.
	UploadImage(ctx context.Context, localFilePath, folder string) (string, error)
	// DeleteImage removes an uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryMediaService implements MediaService on Cloudinary.
type CloudinaryMediaService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryMediaService initializes the Cloudinary client from
// CLOUDINARY_URL config.
func NewCloudinaryMediaService() (MediaService, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL not configured")
	}
	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryMediaService{cld: cld}, nil
}

// UploadImage uploads a file and returns its secure URL.
func (s *CloudinaryMediaService) UploadImage(ctx context.Context, localFilePath, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for uploaded image")
	}
	return result.SecureURL, nil
}

// DeleteImage removes an uploaded image.
func (s *CloudinaryMediaService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
