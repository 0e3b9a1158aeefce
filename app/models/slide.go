package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Slide is a hero-carousel entry on the public site.
type Slide struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255)" json:"title"`
	ImageURL     string    `gorm:"type:varchar(255);not null" json:"image_url" validate:"required"`
	DisplayOrder int       `gorm:"type:int;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Slide model
func (Slide) TableName() string {
	return "slides"
}

func (s *Slide) Validate() error {
	v := validator.New()
	return v.Struct(s)
}

func GetAllSlides(db *gorm.DB) ([]Slide, error) {
	var slides []Slide
	err := db.Order("display_order ASC").Find(&slides).Error
	return slides, err
}
