package media

import (
	"context"
	"mime/multipart"
	"strings"

	"recipevault/domain"
	"recipevault/internal/utils/storage"
)

// uploadPrefix is the fixed key prefix every accepted image lands under.
const uploadPrefix = "uploads"

type (
	MediaService interface {
		UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	}

	mediaService struct {
		s3 storage.AwsS3
	}
)

func NewMediaService(s3 storage.AwsS3) MediaService {
	return &mediaService{s3: s3}
}

// UploadImage gates the file on size and MIME type before any storage I/O,
// then returns the public URL of the stored object.
func (s *mediaService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > domain.MaxUploadSize {
		return "", domain.ErrFileTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", domain.ErrUnsupportedFileType
	}

	objectKey, err := s.s3.UploadFile(ctx, file, uploadPrefix)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}
