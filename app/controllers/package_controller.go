package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/app/repository"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// HandleGetPackages returns all tour packages.
func HandleGetPackages(c *fiber.Ctx) error {
	packages, err := repository.GetGlobalFactory().GetPackageRepository().GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(packages)
}

// HandleGetPackage returns a single package by id.
func HandleGetPackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	pkg, err := repository.GetGlobalFactory().GetPackageRepository().GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pkg)
}

// HandleCreatePackage creates a package from a multipart form.
// The image is required on create.
func HandleCreatePackage(c *fiber.Ctx) error {
	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if image == nil {
		return respondError(c, apperrors.Validation("image is required"))
	}

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid price"))
	}

	pkg := &models.Package{
		Name:        c.FormValue("name"),
		Route:       c.FormValue("route"),
		Description: c.FormValue("description"),
		ImageURL:    image.URL,
		Price:       price,
	}
	if err := pkg.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := repository.GetGlobalFactory().GetPackageRepository().Create(pkg); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

// HandleUpdatePackage updates package fields from a multipart form.
// Empty form values keep the stored value. Price columns managed by the
// promotion engine are never written here.
func HandleUpdatePackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPackageRepository()
	pkg, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if image != nil {
		deleteStoredImage(c.Context(), pkg.ImageURL)
		pkg.ImageURL = image.URL
	}

	if name := c.FormValue("name"); name != "" {
		pkg.Name = name
	}
	if route := c.FormValue("route"); route != "" {
		pkg.Route = route
	}
	if description := c.FormValue("description"); description != "" {
		pkg.Description = description
	}
	if rawPrice := c.FormValue("price"); rawPrice != "" {
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return respondError(c, apperrors.Validation("invalid price"))
		}
		pkg.Price = price
	}

	if err := pkg.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := repo.Update(pkg); err != nil {
		return respondError(c, err)
	}
	return c.JSON(pkg)
}

// HandleDeletePackage removes a package and its stored image.
func HandleDeletePackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPackageRepository()
	pkg, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	deleteStoredImage(c.Context(), pkg.ImageURL)

	return c.JSON(fiber.Map{"message": "Package deleted"})
}
