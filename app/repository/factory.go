package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetPackageRepository returns the package repository instance
func (f *Factory) GetPackageRepository() PackageRepository {
	return f.GetRepositories().Package
}

// GetPromotionRepository returns the promotion repository instance
func (f *Factory) GetPromotionRepository() PromotionRepository {
	return f.GetRepositories().Promotion
}

// GetPromotionPackageRepository returns the join-table repository instance
func (f *Factory) GetPromotionPackageRepository() PromotionPackageRepository {
	return f.GetRepositories().PromotionPackage
}

// GetSlideRepository returns the slide repository instance
func (f *Factory) GetSlideRepository() SlideRepository {
	return f.GetRepositories().Slide
}

// GetMenuItemRepository returns the menu item repository instance
func (f *Factory) GetMenuItemRepository() MenuItemRepository {
	return f.GetRepositories().MenuItem
}

// GetSiteSettingRepository returns the site setting repository instance
func (f *Factory) GetSiteSettingRepository() SiteSettingRepository {
	return f.GetRepositories().SiteSetting
}

// GetSocialMediaRepository returns the social media repository instance
func (f *Factory) GetSocialMediaRepository() SocialMediaRepository {
	return f.GetRepositories().SocialMedia
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
