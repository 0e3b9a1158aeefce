package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SocialMedia is a footer link to one of the business's social profiles.
type SocialMedia struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Platform  string    `gorm:"type:varchar(100);not null" json:"platform" validate:"required,min=1,max=100"`
	URL       string    `gorm:"type:varchar(255);not null" json:"url" validate:"required,url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the SocialMedia model
func (SocialMedia) TableName() string {
	return "social_media"
}

func (s *SocialMedia) Validate() error {
	v := validator.New()
	return v.Struct(s)
}
