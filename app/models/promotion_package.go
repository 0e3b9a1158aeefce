package models

// PromotionPackage is the join row expressing that a package belongs to
// a promotion. Rows are fully replaced on every promotion update.
type PromotionPackage struct {
	PromotionID uint `gorm:"primaryKey" json:"promotion_id"`
	PackageID   uint `gorm:"primaryKey" json:"package_id"`
}

// TableName specifies the table name for the PromotionPackage model
func (PromotionPackage) TableName() string {
	return "promotion_packages"
}
