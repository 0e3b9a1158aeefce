package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// socialMediaRepository implements the SocialMediaRepository interface
type socialMediaRepository struct {
	db *gorm.DB
}

// NewSocialMediaRepository creates a new social media repository instance
func NewSocialMediaRepository(db *gorm.DB) SocialMediaRepository {
	return &socialMediaRepository{db: db}
}

// Create creates a new social media link in the database
func (r *socialMediaRepository) Create(link *models.SocialMedia) error {
	return r.db.Create(link).Error
}

// GetByID retrieves a social media link by its ID
func (r *socialMediaRepository) GetByID(id uint) (*models.SocialMedia, error) {
	var link models.SocialMedia
	err := r.db.First(&link, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("social media link %d not found", id)
		}
		return nil, err
	}
	return &link, nil
}

// GetAll retrieves all social media links
func (r *socialMediaRepository) GetAll() ([]models.SocialMedia, error) {
	var links []models.SocialMedia
	err := r.db.Order("platform ASC").Find(&links).Error
	return links, err
}

// Update persists changes to a social media link
func (r *socialMediaRepository) Update(link *models.SocialMedia) error {
	return r.db.Model(link).
		Select("platform", "url").
		Updates(link).Error
}

// Delete removes a social media link by its ID
func (r *socialMediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.SocialMedia{}, id).Error
}
