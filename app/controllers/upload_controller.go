package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// HandleUploadImage stores a standalone image and returns its URLs.
// Used by the admin frontend for rich-text content images.
func HandleUploadImage(c *fiber.Ctx) error {
	image, err := saveFormImage(c, "file")
	if err != nil {
		return respondError(c, err)
	}
	if image == nil {
		return respondError(c, apperrors.Validation("file is required"))
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}
