package handlers

import (
	"errors"

	"recipevault/domain"
	"recipevault/internal/api/presenters"
	"recipevault/pkg/media"

	"github.com/gofiber/fiber/v2"
)

type (
	MediaHandler interface {
		UploadImage(c *fiber.Ctx) error
	}

	mediaHandler struct {
		mediaService media.MediaService
	}
)

func NewMediaHandler(mediaService media.MediaService) MediaHandler {
	return &mediaHandler{mediaService: mediaService}
}

func (h *mediaHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	imageURL, err := h.mediaService.UploadImage(c.Context(), file)
	if err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) || errors.Is(err, domain.ErrUnsupportedFileType) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, domain.UploadImageResponse{ImageURL: imageURL}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
