package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// promotionRepository implements the PromotionRepository interface
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository instance
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

// Create creates a new promotion in the database
func (r *promotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

// GetByID retrieves a promotion with its associated packages
func (r *promotionRepository) GetByID(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.Preload("Packages").First(&promotion, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("promotion %d not found", id)
		}
		return nil, err
	}
	return &promotion, nil
}

// GetAll retrieves all promotions with their packages, newest first
func (r *promotionRepository) GetAll() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Preload("Packages").Order("created_at DESC").Find(&promotions).Error
	return promotions, err
}

// Update persists the editable fields of a promotion
func (r *promotionRepository) Update(promotion *models.Promotion) error {
	return r.db.Model(promotion).
		Select("title", "description", "terms", "valid_from", "valid_until",
			"discount_percent", "image_url", "status").
		Updates(promotion).Error
}

// UpdateStatus flips only the status column
func (r *promotionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Promotion{}).Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes a promotion row by its ID
func (r *promotionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Promotion{}, id).Error
}

// FindExpiredActive finds promotions still marked active whose validity
// window ended before now
func (r *promotionRepository) FindExpiredActive(now time.Time) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Where("status = ? AND valid_until < ?", models.PromotionStatusActive, now).
		Find(&promotions).Error
	return promotions, err
}
