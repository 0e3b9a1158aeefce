package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// fakeStore keeps package rows in memory. It is handed out by
// fakeTxProvider against a copied snapshot so a failed callback leaves
// the committed state untouched, mirroring a rolled-back transaction.
type fakeStore struct {
	packages map[uint]*models.Package
	failID   uint // UpdatePricing on this id fails
}

func (s *fakeStore) FindByIDs(ids []uint) ([]models.Package, error) {
	var out []models.Package
	for _, id := range ids {
		if pkg, ok := s.packages[id]; ok {
			out = append(out, *pkg)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByPromotion(promotionID uint) ([]models.Package, error) {
	var out []models.Package
	for _, pkg := range s.packages {
		if pkg.PromotionID != nil && *pkg.PromotionID == promotionID {
			out = append(out, *pkg)
		}
	}
	return out, nil
}

func (s *fakeStore) UpdatePricing(id uint, update Update) error {
	if s.failID != 0 && id == s.failID {
		return errors.New("forced row failure")
	}
	pkg, ok := s.packages[id]
	if !ok {
		return errors.New("package not found")
	}
	pkg.Price = update.Price
	pkg.OriginalPrice = update.OriginalPrice
	pkg.DiscountPercent = update.DiscountPercent
	pkg.PromotionID = update.PromotionID
	return nil
}

type fakeTxProvider struct {
	store *fakeStore
}

func (p *fakeTxProvider) WithinTx(fn func(store PackageStore) error) error {
	staged := &fakeStore{packages: map[uint]*models.Package{}, failID: p.store.failID}
	for id, pkg := range p.store.packages {
		clone := *pkg
		staged.packages[id] = &clone
	}
	if err := fn(staged); err != nil {
		return err
	}
	p.store.packages = staged.packages
	return nil
}

func newTestEngine(packages ...*models.Package) (*Engine, *fakeStore) {
	store := &fakeStore{packages: map[uint]*models.Package{}}
	for _, pkg := range packages {
		store.packages[pkg.ID] = pkg
	}
	return NewEngine(&fakeTxProvider{store: store}), store
}

func pkgWithPrice(id uint, price string) *models.Package {
	return &models.Package{ID: id, Name: "pkg", Price: decimal.RequireFromString(price)}
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		original string
		percent  int
		expected string
	}{
		{"whole result", "200", 25, "150"},
		{"ten percent", "100", 10, "90"},
		{"zero percent", "150", 0, "150"},
		{"full discount", "80", 100, "0"},
		{"rounds to cents", "99.99", 33, "66.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountedPrice(decimal.RequireFromString(tt.original), tt.percent)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", got, tt.expected)
		})
	}
}

func TestApplyStoresBaselineAndDiscounts(t *testing.T) {
	engine, store := newTestEngine(pkgWithPrice(7, "200"))

	require.NoError(t, engine.Apply(3, 25, []uint{7}))

	pkg := store.packages[7]
	require.NotNil(t, pkg.OriginalPrice)
	assert.True(t, pkg.OriginalPrice.Equal(decimal.RequireFromString("200")))
	assert.True(t, pkg.Price.Equal(decimal.RequireFromString("150")))
	require.NotNil(t, pkg.DiscountPercent)
	assert.Equal(t, 25, *pkg.DiscountPercent)
	require.NotNil(t, pkg.PromotionID)
	assert.Equal(t, uint(3), *pkg.PromotionID)
}

func TestApplyValidation(t *testing.T) {
	engine, _ := newTestEngine(pkgWithPrice(1, "100"))

	err := engine.Apply(1, 10, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = engine.Apply(1, 101, []uint{1})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = engine.Apply(1, -1, []uint{1})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplySwitchingPromotionsUsesBaseline(t *testing.T) {
	engine, store := newTestEngine(pkgWithPrice(1, "100"))

	require.NoError(t, engine.Apply(1, 10, []uint{1}))
	assert.True(t, store.packages[1].Price.Equal(decimal.RequireFromString("90")))

	// Second promotion without an intervening restore: computed from the
	// preserved baseline of 100, not from the discounted 90.
	require.NoError(t, engine.Apply(2, 20, []uint{1}))

	pkg := store.packages[1]
	assert.True(t, pkg.Price.Equal(decimal.RequireFromString("80")))
	require.NotNil(t, pkg.OriginalPrice)
	assert.True(t, pkg.OriginalPrice.Equal(decimal.RequireFromString("100")))
	require.NotNil(t, pkg.PromotionID)
	assert.Equal(t, uint(2), *pkg.PromotionID)
}

func TestApplyRollsBackWholeBatch(t *testing.T) {
	engine, store := newTestEngine(pkgWithPrice(1, "100"), pkgWithPrice(2, "50"))
	store.failID = 2

	err := engine.Apply(5, 10, []uint{1, 2})
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))

	// Package 1 must be untouched even though its update preceded the failure.
	pkg := store.packages[1]
	assert.True(t, pkg.Price.Equal(decimal.RequireFromString("100")))
	assert.Nil(t, pkg.OriginalPrice)
	assert.Nil(t, pkg.PromotionID)
}

func TestRestoreRoundTrip(t *testing.T) {
	engine, store := newTestEngine(pkgWithPrice(1, "123.45"))

	require.NoError(t, engine.Apply(9, 33, []uint{1}))
	require.NoError(t, engine.Restore(9))

	pkg := store.packages[1]
	assert.True(t, pkg.Price.Equal(decimal.RequireFromString("123.45")))
	assert.Nil(t, pkg.OriginalPrice)
	assert.Nil(t, pkg.DiscountPercent)
	assert.Nil(t, pkg.PromotionID)
}

func TestRestoreIsIdempotent(t *testing.T) {
	engine, store := newTestEngine(pkgWithPrice(1, "60"), pkgWithPrice(2, "80"))

	require.NoError(t, engine.Apply(4, 50, []uint{1, 2}))
	require.NoError(t, engine.Restore(4))

	snapshot := map[uint]models.Package{}
	for id, pkg := range store.packages {
		snapshot[id] = *pkg
	}

	require.NoError(t, engine.Restore(4))

	for id, want := range snapshot {
		got := store.packages[id]
		assert.True(t, got.Price.Equal(want.Price))
		assert.Nil(t, got.OriginalPrice)
		assert.Nil(t, got.DiscountPercent)
		assert.Nil(t, got.PromotionID)
	}
}

func TestRestorePackagesSkipsUndiscounted(t *testing.T) {
	discounted := pkgWithPrice(1, "90")
	orig := decimal.RequireFromString("100")
	percent := 10
	promoID := uint(2)
	discounted.OriginalPrice = &orig
	discounted.DiscountPercent = &percent
	discounted.PromotionID = &promoID

	plain := pkgWithPrice(2, "55")

	engine, store := newTestEngine(discounted, plain)

	require.NoError(t, engine.RestorePackages([]uint{1, 2}))

	assert.True(t, store.packages[1].Price.Equal(decimal.RequireFromString("100")))
	assert.Nil(t, store.packages[1].OriginalPrice)

	// Never discounted: left exactly as it was.
	assert.True(t, store.packages[2].Price.Equal(decimal.RequireFromString("55")))
	assert.Nil(t, store.packages[2].OriginalPrice)
}

func TestRestorePackagesEmptySetIsNoop(t *testing.T) {
	engine, _ := newTestEngine()
	assert.NoError(t, engine.RestorePackages(nil))
}
