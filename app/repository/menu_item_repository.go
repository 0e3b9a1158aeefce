package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// menuItemRepository implements the MenuItemRepository interface
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository instance
func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

// Create creates a new menu item in the database
func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a menu item by its ID
func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("menu item %d not found", id)
		}
		return nil, err
	}
	return &item, nil
}

// GetAll retrieves all menu items, newest first
func (r *menuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// Update persists changes to a menu item
func (r *menuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Model(item).
		Select("name", "description", "price", "image_url").
		Updates(item).Error
}

// Delete removes a menu item by its ID
func (r *menuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
