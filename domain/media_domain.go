package domain

import (
	"errors"
)

// MaxUploadSize caps accepted image uploads at 10MB.
const MaxUploadSize = 10 << 20

var (
	MessageSuccessUploadImage = "image uploaded successfully"

	MessageFailedUploadImage = "failed to upload image"

	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedFileType = errors.New("only image files are allowed")
)

type (
	UploadImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
