package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Promotion status values. Expired is terminal; only an admin edit
// brings a promotion back to active.
const (
	PromotionStatusActive  = "active"
	PromotionStatusExpired = "expired"
)

// Promotion is a time-bounded percentage-discount campaign over a set
// of packages.
type Promotion struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Description     string    `gorm:"type:text" json:"description"`
	Terms           string    `gorm:"type:text" json:"terms"`
	ValidFrom       time.Time `gorm:"not null" json:"valid_from"`
	ValidUntil      time.Time `gorm:"not null" json:"valid_until"`
	DiscountPercent int       `gorm:"type:int;not null" json:"discount_percent" validate:"min=0,max=100"`
	ImageURL        string    `gorm:"type:varchar(255)" json:"image_url"`
	Status          string    `gorm:"type:varchar(20);default:'active';index" json:"status"`
	Packages        []Package `gorm:"many2many:promotion_packages;" json:"packages,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

func (p *Promotion) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// IsExpiredAt reports whether the validity window has passed.
func (p *Promotion) IsExpiredAt(now time.Time) bool {
	return p.ValidUntil.Before(now)
}
