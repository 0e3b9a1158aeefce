package repository

import (
	"time"

	"github.com/tanahmerapi/backend/app/models"
	"gorm.io/gorm"
)

// PackageRepository defines the interface for package-related database operations
type PackageRepository interface {
	Create(pkg *models.Package) error
	GetByID(id uint) (*models.Package, error)
	GetByIDs(ids []uint) ([]models.Package, error)
	GetByPromotion(promotionID uint) ([]models.Package, error)
	GetAll() ([]models.Package, error)
	Update(pkg *models.Package) error
	Delete(id uint) error
	Count() (int64, error)
}

// PromotionRepository defines the interface for promotion-related database operations
type PromotionRepository interface {
	Create(promotion *models.Promotion) error
	GetByID(id uint) (*models.Promotion, error)
	GetAll() ([]models.Promotion, error)
	Update(promotion *models.Promotion) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	FindExpiredActive(now time.Time) ([]models.Promotion, error)
}

// PromotionPackageRepository maintains the promotion/package join rows.
// The join is always replaced wholesale, never diffed.
type PromotionPackageRepository interface {
	Replace(promotionID uint, packageIDs []uint) error
	DeleteByPromotion(promotionID uint) error
	ListPackageIDs(promotionID uint) ([]uint, error)
}

// SlideRepository defines the interface for slide-related database operations
type SlideRepository interface {
	Create(slide *models.Slide) error
	GetByID(id uint) (*models.Slide, error)
	GetAll() ([]models.Slide, error)
	Update(slide *models.Slide) error
	Delete(id uint) error
}

// MenuItemRepository defines the interface for menu-item database operations
type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetAll() ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
}

// SiteSettingRepository defines the interface for site settings
type SiteSettingRepository interface {
	GetAll() ([]models.SiteSetting, error)
	GetByKey(key string) (*models.SiteSetting, error)
	Upsert(setting *models.SiteSetting) error
	Delete(key string) error
}

// SocialMediaRepository defines the interface for social media links
type SocialMediaRepository interface {
	Create(link *models.SocialMedia) error
	GetByID(id uint) (*models.SocialMedia, error)
	GetAll() ([]models.SocialMedia, error)
	Update(link *models.SocialMedia) error
	Delete(id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Package          PackageRepository
	Promotion        PromotionRepository
	PromotionPackage PromotionPackageRepository
	Slide            SlideRepository
	MenuItem         MenuItemRepository
	SiteSetting      SiteSettingRepository
	SocialMedia      SocialMediaRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Package:          NewPackageRepository(db),
		Promotion:        NewPromotionRepository(db),
		PromotionPackage: NewPromotionPackageRepository(db),
		Slide:            NewSlideRepository(db),
		MenuItem:         NewMenuItemRepository(db),
		SiteSetting:      NewSiteSettingRepository(db),
		SocialMedia:      NewSocialMediaRepository(db),
	}
}
