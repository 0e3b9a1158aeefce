package controllers

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/tanahmerapi/backend/app/repository"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
	"github.com/tanahmerapi/backend/internal/pkg/database"
	"github.com/tanahmerapi/backend/internal/pkg/pricing"
	"github.com/tanahmerapi/backend/internal/pkg/promotion"
)

var (
	promotionService     *promotion.Service
	promotionServiceOnce sync.Once
)

func getPromotionService() *promotion.Service {
	promotionServiceOnce.Do(func() {
		factory := repository.GetGlobalFactory()
		engine := pricing.NewEngine(repository.NewPricingTxProvider(database.GetDB()))
		promotionService = promotion.NewService(
			factory.GetPackageRepository(),
			factory.GetPromotionRepository(),
			factory.GetPromotionPackageRepository(),
			engine,
		)
	})
	return promotionService
}

// HandleGetPromotions lists all promotions with their packages. Expired
// promotions are swept first so listings never show a stale discount.
func HandleGetPromotions(c *fiber.Ctx) error {
	service := getPromotionService()

	if _, err := service.CheckExpired(time.Now()); err != nil {
		fiberlog.Errorf("[Promotion] Expiry check before listing failed: %v", err)
	}

	promotions, err := service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(promotions)
}

// HandleGetPromotion returns a single promotion with its packages.
func HandleGetPromotion(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	promo, err := getPromotionService().Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(promo)
}

// HandleCreatePromotion creates a promotion from a multipart form and
// applies the discount to the selected packages.
func HandleCreatePromotion(c *fiber.Ctx) error {
	input, packageIDs, err := parsePromotionForm(c)
	if err != nil {
		return respondError(c, err)
	}

	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	imageURL := ""
	if image != nil {
		imageURL = image.URL
	}

	promo, err := getPromotionService().Create(input, packageIDs, imageURL)
	if err != nil {
		if image != nil {
			deleteStoredImage(c.Context(), image.URL)
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(promo)
}

// HandleUpdatePromotion updates a promotion, restoring the previous
// discount before the new one is applied.
func HandleUpdatePromotion(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	input, packageIDs, err := parsePromotionForm(c)
	if err != nil {
		return respondError(c, err)
	}

	service := getPromotionService()

	previous, err := service.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	imageURL := ""
	if image != nil {
		imageURL = image.URL
	}

	promo, err := service.Update(id, input, packageIDs, imageURL)
	if err != nil {
		if image != nil {
			deleteStoredImage(c.Context(), image.URL)
		}
		return respondError(c, err)
	}

	// The previous cover only gets removed when it was an uploaded file
	// that the update replaced. Covers derived from a package image stay,
	// they belong to the package.
	if image != nil && previous.ImageURL != "" && previous.ImageURL != promo.ImageURL && !isPackageImage(previous.ImageURL) {
		deleteStoredImage(c.Context(), previous.ImageURL)
	}

	return c.JSON(promo)
}

// HandleDeletePromotion restores package prices and removes a promotion.
func HandleDeletePromotion(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	promo, err := getPromotionService().Delete(id)
	if err != nil {
		return respondError(c, err)
	}

	if promo.ImageURL != "" && !isPackageImage(promo.ImageURL) {
		deleteStoredImage(c.Context(), promo.ImageURL)
	}

	return c.JSON(fiber.Map{"message": "Promotion deleted"})
}

// parsePromotionForm reads the shared multipart fields of the create and
// update endpoints. package_ids arrives as a JSON array, either of
// numbers or numeric strings.
func parsePromotionForm(c *fiber.Ctx) (promotion.Input, []uint, error) {
	input := promotion.Input{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Terms:       c.FormValue("terms"),
	}

	if raw := c.FormValue("valid_from"); raw != "" {
		t, err := parseFormTime(raw)
		if err != nil {
			return input, nil, apperrors.Validation("invalid valid_from date")
		}
		input.ValidFrom = t
	}
	if raw := c.FormValue("valid_until"); raw != "" {
		t, err := parseFormTime(raw)
		if err != nil {
			return input, nil, apperrors.Validation("invalid valid_until date")
		}
		input.ValidUntil = t
	}
	if raw := c.FormValue("discount_percent"); raw != "" {
		percent, err := strconv.Atoi(raw)
		if err != nil {
			return input, nil, apperrors.Validation("invalid discount_percent")
		}
		input.DiscountPercent = percent
	}

	packageIDs, err := parsePackageIDs(c.FormValue("package_ids"))
	if err != nil {
		return input, nil, err
	}

	return input, packageIDs, nil
}

func parseFormTime(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.Validation("unrecognized date format")
}

func parsePackageIDs(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperrors.Validation("at least one package must be selected")
	}

	var values []json.Number
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, apperrors.Validation("invalid package_ids format")
	}

	ids := make([]uint, 0, len(values))
	for _, v := range values {
		n, err := strconv.ParseUint(v.String(), 10, 32)
		if err != nil || n == 0 {
			return nil, apperrors.Validationf("invalid package id %q", v.String())
		}
		ids = append(ids, uint(n))
	}
	if len(ids) == 0 {
		return nil, apperrors.Validation("at least one package must be selected")
	}
	return ids, nil
}

// isPackageImage reports whether a promotion cover URL is actually some
// package's own image, which must never be deleted with the promotion.
func isPackageImage(url string) bool {
	packages, err := repository.GetGlobalFactory().GetPackageRepository().GetAll()
	if err != nil {
		fiberlog.Warnf("[Promotion] Could not check image ownership for %s: %v", url, err)
		return true
	}
	for _, pkg := range packages {
		if pkg.ImageURL == url {
			return true
		}
	}
	return false
}
