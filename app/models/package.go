package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Package is a priced tour offer. The pricing fields original_price,
// discount_percent and promotion_id are owned by the pricing engine and
// are only ever mutated together: either all three are set (discounted)
// or all three are null (price is canonical).
type Package struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Name            string           `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Route           string           `gorm:"type:text" json:"route"`
	Description     string           `gorm:"type:text" json:"description"`
	ImageURL        string           `gorm:"type:varchar(255);not null" json:"image_url" validate:"required"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"original_price"`
	DiscountPercent *int             `gorm:"type:int" json:"discount_percent"`
	PromotionID     *uint            `gorm:"index" json:"promotion_id"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Package model
func (Package) TableName() string {
	return "packages"
}

func (p *Package) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// IsDiscounted reports whether an active promotion currently overrides the price.
func (p *Package) IsDiscounted() bool {
	return p.PromotionID != nil && p.OriginalPrice != nil
}

func FindPackageByID(db *gorm.DB, id uint) (*Package, error) {
	var pkg Package
	err := db.First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func GetAllPackages(db *gorm.DB) ([]Package, error) {
	var packages []Package
	err := db.Order("created_at DESC").Find(&packages).Error
	return packages, err
}
