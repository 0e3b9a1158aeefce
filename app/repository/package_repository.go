package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// packageRepository implements the PackageRepository interface
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository instance
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

// Create creates a new package in the database
func (r *packageRepository) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

// GetByID retrieves a package by its ID
func (r *packageRepository) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("package %d not found", id)
		}
		return nil, err
	}
	return &pkg, nil
}

// GetByIDs retrieves all packages matching the given id set
func (r *packageRepository) GetByIDs(ids []uint) ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Where("id IN ?", ids).Find(&packages).Error
	return packages, err
}

// GetByPromotion retrieves the packages currently discounted by a promotion
func (r *packageRepository) GetByPromotion(promotionID uint) ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Where("promotion_id = ?", promotionID).Find(&packages).Error
	return packages, err
}

// GetAll retrieves all packages, newest first
func (r *packageRepository) GetAll() ([]models.Package, error) {
	return models.GetAllPackages(r.db)
}

// Update persists the catalog fields of a package. The pricing columns
// (original_price, discount_percent, promotion_id) belong to the pricing
// engine and are never written here.
func (r *packageRepository) Update(pkg *models.Package) error {
	return r.db.Model(pkg).
		Select("name", "route", "description", "image_url", "price").
		Updates(pkg).Error
}

// Delete removes a package by its ID
func (r *packageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Package{}, id).Error
}

// Count returns the total number of packages
func (r *packageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Package{}).Count(&count).Error
	return count, err
}
