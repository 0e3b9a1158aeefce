package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/app/repository"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// HandleGetSlides returns all homepage slides ordered by display position.
func HandleGetSlides(c *fiber.Ctx) error {
	slides, err := repository.GetGlobalFactory().GetSlideRepository().GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slides)
}

// HandleCreateSlide creates a slide. The image is required on create.
func HandleCreateSlide(c *fiber.Ctx) error {
	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if image == nil {
		return respondError(c, apperrors.Validation("image is required"))
	}

	order := 0
	if raw := c.FormValue("display_order"); raw != "" {
		order, err = strconv.Atoi(raw)
		if err != nil {
			return respondError(c, apperrors.Validation("invalid display_order"))
		}
	}

	slide := &models.Slide{
		Title:        c.FormValue("title"),
		ImageURL:     image.URL,
		DisplayOrder: order,
	}
	if err := slide.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := repository.GetGlobalFactory().GetSlideRepository().Create(slide); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(slide)
}

// HandleUpdateSlide updates slide fields, replacing the stored image when
// a new one is uploaded.
func HandleUpdateSlide(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetSlideRepository()
	slide, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if image != nil {
		deleteStoredImage(c.Context(), slide.ImageURL)
		slide.ImageURL = image.URL
	}

	if title := c.FormValue("title"); title != "" {
		slide.Title = title
	}
	if raw := c.FormValue("display_order"); raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(c, apperrors.Validation("invalid display_order"))
		}
		slide.DisplayOrder = order
	}

	if err := slide.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := repo.Update(slide); err != nil {
		return respondError(c, err)
	}
	return c.JSON(slide)
}

// HandleDeleteSlide removes a slide and its stored image.
func HandleDeleteSlide(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetSlideRepository()
	slide, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	deleteStoredImage(c.Context(), slide.ImageURL)

	return c.JSON(fiber.Map{"message": "Slide deleted"})
}
