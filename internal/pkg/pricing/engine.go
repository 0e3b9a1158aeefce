package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// Update carries the pricing columns written by the engine. A nil
// pointer clears the column.
type Update struct {
	Price           decimal.Decimal
	OriginalPrice   *decimal.Decimal
	DiscountPercent *int
	PromotionID     *uint
}

// PackageStore reads and writes package rows within the transaction it
// was handed out for. Implementations must lock the rows they return so
// a concurrent apply/restore on the same packages cannot interleave.
type PackageStore interface {
	FindByIDs(ids []uint) ([]models.Package, error)
	FindByPromotion(promotionID uint) ([]models.Package, error)
	UpdatePricing(id uint, update Update) error
}

// TxProvider runs fn against a transaction-scoped PackageStore and
// commits only when fn returns nil; any error rolls the whole batch back.
type TxProvider interface {
	WithinTx(fn func(store PackageStore) error) error
}

// Engine applies and removes promotion discounts on package rows.
//
// The first time a package is discounted its current price is captured
// into original_price. Every later discount is computed from that
// preserved baseline, never from the current price, so re-applying or
// switching promotions cannot compound.
type Engine struct {
	tx TxProvider
}

// NewEngine creates a pricing engine over the given transaction provider
func NewEngine(tx TxProvider) *Engine {
	return &Engine{tx: tx}
}

// DiscountedPrice returns original reduced by percent, rounded to two
// decimal places.
func DiscountedPrice(original decimal.Decimal, percent int) decimal.Decimal {
	cut := original.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
	return original.Sub(cut).Round(2)
}

// Apply discounts all packages in packageIDs for the given promotion in
// a single transaction. Either every package is updated or none.
func (e *Engine) Apply(promotionID uint, discountPercent int, packageIDs []uint) error {
	if len(packageIDs) == 0 {
		return apperrors.Validation("at least one package must be selected")
	}
	if discountPercent < 0 || discountPercent > 100 {
		return apperrors.Validationf("discount percent %d outside [0,100]", discountPercent)
	}

	err := e.tx.WithinTx(func(store PackageStore) error {
		packages, err := store.FindByIDs(packageIDs)
		if err != nil {
			return err
		}
		for i := range packages {
			pkg := &packages[i]

			// First discount on this package: the current price is the baseline.
			baseline := pkg.OriginalPrice
			if baseline == nil {
				price := pkg.Price
				baseline = &price
			}

			percent := discountPercent
			promoID := promotionID
			update := Update{
				Price:           DiscountedPrice(*baseline, discountPercent),
				OriginalPrice:   baseline,
				DiscountPercent: &percent,
				PromotionID:     &promoID,
			}
			if err := store.UpdatePricing(pkg.ID, update); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Storage(err, "apply promotion discount")
	}
	return nil
}

// Restore resets every package currently pointing at promotionID back to
// its original price and clears the discount fields.
func (e *Engine) Restore(promotionID uint) error {
	err := e.tx.WithinTx(func(store PackageStore) error {
		packages, err := store.FindByPromotion(promotionID)
		if err != nil {
			return err
		}
		return restorePackages(store, packages)
	})
	if err != nil {
		return apperrors.Storage(err, "restore promotion prices")
	}
	return nil
}

// RestorePackages resets an explicit package id set, independent of any
// promotion association.
func (e *Engine) RestorePackages(packageIDs []uint) error {
	if len(packageIDs) == 0 {
		return nil
	}
	err := e.tx.WithinTx(func(store PackageStore) error {
		packages, err := store.FindByIDs(packageIDs)
		if err != nil {
			return err
		}
		return restorePackages(store, packages)
	})
	if err != nil {
		return apperrors.Storage(err, "restore package prices")
	}
	return nil
}

// restorePackages is idempotent: packages without a stored baseline were
// never discounted (or are already restored) and stay untouched.
func restorePackages(store PackageStore, packages []models.Package) error {
	for i := range packages {
		pkg := &packages[i]
		if pkg.OriginalPrice == nil {
			continue
		}
		update := Update{
			Price:           *pkg.OriginalPrice,
			OriginalPrice:   nil,
			DiscountPercent: nil,
			PromotionID:     nil,
		}
		if err := store.UpdatePricing(pkg.ID, update); err != nil {
			return err
		}
	}
	return nil
}
