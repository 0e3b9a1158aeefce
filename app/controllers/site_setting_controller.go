package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/app/repository"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
	"github.com/tanahmerapi/backend/internal/pkg/cache"
)

const (
	siteSettingsCacheKey = "site_settings"
	siteSettingsCacheTTL = 10 * time.Minute
)

// HandleGetSiteSettings returns all site settings. The public site polls
// this endpoint, so the full list is served from the Redis cache when
// possible.
func HandleGetSiteSettings(c *fiber.Ctx) error {
	if cached, err := cache.Get(siteSettingsCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	settings, err := repository.GetGlobalFactory().GetSiteSettingRepository().GetAll()
	if err != nil {
		return respondError(c, err)
	}

	if payload, err := json.Marshal(settings); err == nil {
		if err := cache.Set(siteSettingsCacheKey, string(payload), siteSettingsCacheTTL); err != nil {
			fiberlog.Debugf("[SiteSettings] Cache write failed: %v", err)
		}
	}

	return c.JSON(settings)
}

// HandleGetSiteSetting returns a single setting by key.
func HandleGetSiteSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return respondError(c, apperrors.Validation("setting key missing"))
	}

	setting, err := repository.GetGlobalFactory().GetSiteSettingRepository().GetByKey(key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(setting)
}

// HandleUpsertSiteSetting creates or updates the setting behind a key.
// Image-typed settings take their value from an uploaded file, replacing
// the previously stored object.
func HandleUpsertSiteSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return respondError(c, apperrors.Validation("setting key missing"))
	}

	repo := repository.GetGlobalFactory().GetSiteSettingRepository()
	existing, err := repo.GetByKey(key)
	if err != nil && !apperrors.IsNotFound(err) {
		return respondError(c, err)
	}

	setting := &models.SiteSetting{
		Key:   key,
		Value: c.FormValue("value"),
		Type:  c.FormValue("type"),
	}
	if setting.Type == "" {
		setting.Type = models.SettingTypeText
	}

	image, err := saveFormImage(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	if image != nil {
		if existing != nil && existing.Type == models.SettingTypeImage {
			deleteStoredImage(c.Context(), existing.Value)
		}
		setting.Value = image.URL
		setting.Type = models.SettingTypeImage
	}

	if err := repo.Upsert(setting); err != nil {
		return respondError(c, err)
	}

	if err := cache.Delete(siteSettingsCacheKey); err != nil {
		fiberlog.Debugf("[SiteSettings] Cache invalidation failed: %v", err)
	}

	return c.JSON(setting)
}

// HandleDeleteSiteSetting removes a setting, including a stored image
// for image-typed settings.
func HandleDeleteSiteSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return respondError(c, apperrors.Validation("setting key missing"))
	}

	repo := repository.GetGlobalFactory().GetSiteSettingRepository()
	setting, err := repo.GetByKey(key)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(key); err != nil {
		return respondError(c, err)
	}
	if setting.Type == models.SettingTypeImage {
		deleteStoredImage(c.Context(), setting.Value)
	}

	if err := cache.Delete(siteSettingsCacheKey); err != nil {
		fiberlog.Debugf("[SiteSettings] Cache invalidation failed: %v", err)
	}

	return c.JSON(fiber.Map{"message": "Setting deleted"})
}
