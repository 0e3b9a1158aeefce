package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
	"github.com/tanahmerapi/backend/internal/pkg/storage"
	"github.com/tanahmerapi/backend/internal/pkg/upload"
)

var storageClient *storage.Client

// SetStorageClient wires the object storage client used for image uploads.
// Called once during startup.
func SetStorageClient(client *storage.Client) {
	storageClient = client
}

// parseIDParam reads the numeric :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("invalid id parameter")
	}
	return uint(id), nil
}

// respondError maps domain errors onto the JSON error responses the
// admin frontend expects.
func respondError(c *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": validationErrs.Error()})
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": err.Error()})
	default:
		fiberlog.Errorf("[API] %s %s failed: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Server error"})
	}
}

// uploadedImage holds the storage URLs of a stored request image.
type uploadedImage struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// saveFormImage validates and stores the multipart file under the given
// form field. Returns nil without error when the field is absent so
// callers can treat the image as optional.
func saveFormImage(c *fiber.Ctx, field string) (*uploadedImage, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.Storage(err, "open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.Storage(err, "read uploaded file")
	}
	if len(data) == 0 {
		return nil, apperrors.Validation("uploaded file is empty")
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	contentType, err := upload.ValidateImageBySniff(fileHeader.Filename, head)
	if err != nil {
		return nil, err
	}

	if storageClient == nil {
		return nil, apperrors.Storage(fmt.Errorf("storage client not configured"), "store uploaded file")
	}

	key := storageClient.Config().NewObjectKey(fileHeader.Filename)
	url, err := storageClient.Upload(c.Context(), key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, apperrors.Storage(err, "store uploaded file")
	}

	result := &uploadedImage{URL: url}

	// Thumbnail is a best-effort variant, the original is authoritative.
	if thumb, err := upload.Thumbnail(bytes.NewReader(data)); err != nil {
		fiberlog.Warnf("[Upload] Thumbnail generation failed for %s: %v", key, err)
	} else {
		thumbKey := upload.ThumbnailKey(key)
		thumbURL, err := storageClient.Upload(c.Context(), thumbKey, bytes.NewReader(thumb), "image/jpeg")
		if err != nil {
			fiberlog.Warnf("[Upload] Thumbnail upload failed for %s: %v", thumbKey, err)
		} else {
			result.ThumbnailURL = thumbURL
		}
	}

	return result, nil
}

// deleteStoredImage removes a previously stored image and its thumbnail
// variant. Failures are logged, never surfaced to the client.
func deleteStoredImage(ctx context.Context, url string) {
	if url == "" || storageClient == nil {
		return
	}
	if err := storageClient.DeleteByURL(ctx, url); err != nil {
		fiberlog.Warnf("[Upload] Failed to delete stored image %s: %v", url, err)
	}
	if key := storageClient.Config().KeyFromURL(url); key != "" {
		thumbKey := upload.ThumbnailKey(key)
		if err := storageClient.Delete(ctx, thumbKey); err != nil {
			fiberlog.Debugf("[Upload] No thumbnail variant removed for %s: %v", thumbKey, err)
		}
	}
}
