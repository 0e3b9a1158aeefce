package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// siteSettingRepository implements the SiteSettingRepository interface
type siteSettingRepository struct {
	db *gorm.DB
}

// NewSiteSettingRepository creates a new site setting repository instance
func NewSiteSettingRepository(db *gorm.DB) SiteSettingRepository {
	return &siteSettingRepository{db: db}
}

// GetAll retrieves all site settings
func (r *siteSettingRepository) GetAll() ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	err := r.db.Order("`key` ASC").Find(&settings).Error
	return settings, err
}

// GetByKey retrieves a single setting by its key
func (r *siteSettingRepository) GetByKey(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.db.Where("`key` = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("setting %q not found", key)
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert creates the setting or updates value and type of an existing key
func (r *siteSettingRepository) Upsert(setting *models.SiteSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type"}),
	}).Create(setting).Error
}

// Delete removes a setting by its key
func (r *siteSettingRepository) Delete(key string) error {
	return r.db.Where("`key` = ?", key).Delete(&models.SiteSetting{}).Error
}
