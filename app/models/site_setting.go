package models

import (
	"time"
)

// Site setting value types. Image-typed settings hold an object storage
// URL and are replaced via upload, not plain text.
const (
	SettingTypeText  = "text"
	SettingTypeImage = "image"
)

// SiteSetting is a single key/value row of site-wide configuration
// (hero image, contact details, opening hours and the like).
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"type:varchar(20);default:'text'" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the SiteSetting model
func (SiteSetting) TableName() string {
	return "site_settings"
}
