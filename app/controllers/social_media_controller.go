package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/app/repository"
)

// HandleGetSocialMedia returns all configured social media links.
func HandleGetSocialMedia(c *fiber.Ctx) error {
	links, err := repository.GetGlobalFactory().GetSocialMediaRepository().GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(links)
}

// HandleCreateSocialMedia adds a social media link.
func HandleCreateSocialMedia(c *fiber.Ctx) error {
	link := new(models.SocialMedia)
	if err := c.BodyParser(link); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid request body"})
	}
	link.ID = 0

	if err := link.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := repository.GetGlobalFactory().GetSocialMediaRepository().Create(link); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// HandleUpdateSocialMedia updates a social media link.
func HandleUpdateSocialMedia(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetSocialMediaRepository()
	link, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var body struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid request body"})
	}
	if body.Platform != "" {
		link.Platform = body.Platform
	}
	if body.URL != "" {
		link.URL = body.URL
	}

	if err := link.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := repo.Update(link); err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

// HandleDeleteSocialMedia removes a social media link.
func HandleDeleteSocialMedia(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetSocialMediaRepository()
	if _, err := repo.GetByID(id); err != nil {
		return respondError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Social media link deleted"})
}
