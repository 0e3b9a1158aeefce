package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/pricing"
)

// pricingTxProvider backs the pricing engine with GORM transactions.
// Every engine call runs as one transaction; the reads take row locks so
// a concurrent sweep and an admin update on the same packages serialize.
type pricingTxProvider struct {
	db *gorm.DB
}

// NewPricingTxProvider creates the pricing engine's transaction provider
func NewPricingTxProvider(db *gorm.DB) pricing.TxProvider {
	return &pricingTxProvider{db: db}
}

// WithinTx runs fn against a transaction-scoped package store, committing
// on nil and rolling back the whole batch on error.
func (p *pricingTxProvider) WithinTx(fn func(store pricing.PackageStore) error) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		return fn(&pricingPackageStore{db: tx})
	})
}

// pricingPackageStore implements pricing.PackageStore on a transaction handle
type pricingPackageStore struct {
	db *gorm.DB
}

func (s *pricingPackageStore) FindByIDs(ids []uint) ([]models.Package, error) {
	var packages []models.Package
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).Find(&packages).Error
	return packages, err
}

func (s *pricingPackageStore) FindByPromotion(promotionID uint) ([]models.Package, error) {
	var packages []models.Package
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("promotion_id = ?", promotionID).Find(&packages).Error
	return packages, err
}

// UpdatePricing writes all four pricing columns at once. Nil pointers in
// the update become NULLs, keeping the all-set-or-all-null invariant.
func (s *pricingPackageStore) UpdatePricing(id uint, update pricing.Update) error {
	return s.db.Model(&models.Package{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"price":            update.Price,
			"original_price":   update.OriginalPrice,
			"discount_percent": update.DiscountPercent,
			"promotion_id":     update.PromotionID,
		}).Error
}
