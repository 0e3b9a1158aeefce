package repository

import (
	"gorm.io/gorm"

	"github.com/tanahmerapi/backend/app/models"
)

// promotionPackageRepository implements the PromotionPackageRepository interface
type promotionPackageRepository struct {
	db *gorm.DB
}

// NewPromotionPackageRepository creates a new join-table repository instance
func NewPromotionPackageRepository(db *gorm.DB) PromotionPackageRepository {
	return &promotionPackageRepository{db: db}
}

// Replace swaps the full package set of a promotion: delete all current
// join rows, then bulk-insert the new ones, in one transaction.
func (r *promotionPackageRepository) Replace(promotionID uint, packageIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", promotionID).
			Delete(&models.PromotionPackage{}).Error; err != nil {
			return err
		}
		if len(packageIDs) == 0 {
			return nil
		}
		rows := make([]models.PromotionPackage, 0, len(packageIDs))
		for _, packageID := range packageIDs {
			rows = append(rows, models.PromotionPackage{
				PromotionID: promotionID,
				PackageID:   packageID,
			})
		}
		return tx.Create(&rows).Error
	})
}

// DeleteByPromotion removes all join rows of a promotion
func (r *promotionPackageRepository) DeleteByPromotion(promotionID uint) error {
	return r.db.Where("promotion_id = ?", promotionID).
		Delete(&models.PromotionPackage{}).Error
}

// ListPackageIDs returns the ids of all packages joined to a promotion
func (r *promotionPackageRepository) ListPackageIDs(promotionID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.PromotionPackage{}).
		Where("promotion_id = ?", promotionID).
		Pluck("package_id", &ids).Error
	return ids, err
}
