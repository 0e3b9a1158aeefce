package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// slideRepository implements the SlideRepository interface
type slideRepository struct {
	db *gorm.DB
}

// NewSlideRepository creates a new slide repository instance
func NewSlideRepository(db *gorm.DB) SlideRepository {
	return &slideRepository{db: db}
}

// Create creates a new slide in the database
func (r *slideRepository) Create(slide *models.Slide) error {
	return r.db.Create(slide).Error
}

// GetByID retrieves a slide by its ID
func (r *slideRepository) GetByID(id uint) (*models.Slide, error) {
	var slide models.Slide
	err := r.db.First(&slide, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("slide %d not found", id)
		}
		return nil, err
	}
	return &slide, nil
}

// GetAll retrieves all slides in display order
func (r *slideRepository) GetAll() ([]models.Slide, error) {
	return models.GetAllSlides(r.db)
}

// Update persists changes to a slide
func (r *slideRepository) Update(slide *models.Slide) error {
	return r.db.Model(slide).
		Select("title", "image_url", "display_order").
		Updates(slide).Error
}

// Delete removes a slide by its ID
func (r *slideRepository) Delete(id uint) error {
	return r.db.Delete(&models.Slide{}, id).Error
}
