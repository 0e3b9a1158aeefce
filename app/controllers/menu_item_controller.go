package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/app/repository"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// HandleGetMenuItems returns all restaurant menu items.
func HandleGetMenuItems(c *fiber.Ctx) error {
	items, err := repository.GetGlobalFactory().GetMenuItemRepository().GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleGetMenuItem returns a single menu item by id.
func HandleGetMenuItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	item, err := repository.GetGlobalFactory().GetMenuItemRepository().GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleCreateMenuItem creates a menu item from a multipart form.
func HandleCreateMenuItem(c *fiber.Ctx) error {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid price"))
	}

	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if image == nil {
		return respondError(c, apperrors.Validation("image is required"))
	}

	item := &models.MenuItem{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		ImageURL:    image.URL,
	}

	if err := item.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := repository.GetGlobalFactory().GetMenuItemRepository().Create(item); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateMenuItem updates menu item fields. Empty values keep the
// stored value.
func HandleUpdateMenuItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetMenuItemRepository()
	item, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if image != nil {
		deleteStoredImage(c.Context(), item.ImageURL)
		item.ImageURL = image.URL
	}

	if name := c.FormValue("name"); name != "" {
		item.Name = name
	}
	if description := c.FormValue("description"); description != "" {
		item.Description = description
	}
	if rawPrice := c.FormValue("price"); rawPrice != "" {
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return respondError(c, apperrors.Validation("invalid price"))
		}
		item.Price = price
	}

	if err := item.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := repo.Update(item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleDeleteMenuItem removes a menu item and its stored image.
func HandleDeleteMenuItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetMenuItemRepository()
	item, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	deleteStoredImage(c.Context(), item.ImageURL)

	return c.JSON(fiber.Map{"message": "Menu item deleted"})
}
