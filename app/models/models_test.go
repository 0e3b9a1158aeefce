package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPackageValidate(t *testing.T) {
	pkg := &Package{
		Name:     "Jeep Lava Tour",
		ImageURL: "https://cdn.example.com/uploads/jeep.jpg",
		Price:    decimal.NewFromInt(150000),
	}
	assert.NoError(t, pkg.Validate())

	pkg.Name = ""
	assert.Error(t, pkg.Validate())
}

func TestPackageIsDiscounted(t *testing.T) {
	pkg := &Package{Price: decimal.NewFromInt(100)}
	assert.False(t, pkg.IsDiscounted())

	original := decimal.NewFromInt(100)
	promoID := uint(3)
	pkg.OriginalPrice = &original
	pkg.PromotionID = &promoID
	assert.True(t, pkg.IsDiscounted())

	pkg.OriginalPrice = nil
	assert.False(t, pkg.IsDiscounted())
}

func TestPromotionValidateDiscountBounds(t *testing.T) {
	promo := &Promotion{
		Title:           "Merdeka Sale",
		ValidFrom:       time.Now(),
		ValidUntil:      time.Now().Add(24 * time.Hour),
		DiscountPercent: 25,
	}
	assert.NoError(t, promo.Validate())

	promo.DiscountPercent = 101
	assert.Error(t, promo.Validate())

	promo.DiscountPercent = -1
	assert.Error(t, promo.Validate())
}

func TestPromotionIsExpiredAt(t *testing.T) {
	now := time.Now()
	promo := &Promotion{ValidUntil: now.Add(time.Hour)}
	assert.False(t, promo.IsExpiredAt(now))

	promo.ValidUntil = now.Add(-time.Minute)
	assert.True(t, promo.IsExpiredAt(now))
}

func TestSocialMediaValidateURL(t *testing.T) {
	link := &SocialMedia{Platform: "instagram", URL: "https://instagram.com/tanahmerapi"}
	assert.NoError(t, link.Validate())

	link.URL = "not-a-url"
	assert.Error(t, link.Validate())
}
