package promotion

import (
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/app/repository"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// Pricer applies and removes promotion discounts transactionally.
// Implemented by the pricing engine.
type Pricer interface {
	Apply(promotionID uint, discountPercent int, packageIDs []uint) error
	Restore(promotionID uint) error
}

// Input carries the editable promotion fields from the transport layer.
type Input struct {
	Title           string
	Description     string
	Terms           string
	ValidFrom       time.Time
	ValidUntil      time.Time
	DiscountPercent int
}

// Service orchestrates the promotion lifecycle: it validates the package
// selection, resolves the cover image, keeps the join table in sync and
// delegates every price change to the pricing engine.
type Service struct {
	packages   repository.PackageRepository
	promotions repository.PromotionRepository
	joins      repository.PromotionPackageRepository
	pricer     Pricer
}

// NewService creates a promotion lifecycle service
func NewService(
	packages repository.PackageRepository,
	promotions repository.PromotionRepository,
	joins repository.PromotionPackageRepository,
	pricer Pricer,
) *Service {
	return &Service{
		packages:   packages,
		promotions: promotions,
		joins:      joins,
		pricer:     pricer,
	}
}

// Create persists a new active promotion, associates the selected
// packages and applies the discount to them.
func (s *Service) Create(input Input, packageIDs []uint, uploadedImageURL string) (*models.Promotion, error) {
	selected, err := s.loadSelection(packageIDs)
	if err != nil {
		return nil, err
	}

	source := ExplicitImage(uploadedImageURL)
	if uploadedImageURL == "" {
		source = PackageImage(packageIDs[0])
	}
	imageURL, err := source.Resolve(selected)
	if err != nil {
		return nil, err
	}

	promo := &models.Promotion{
		Title:           input.Title,
		Description:     input.Description,
		Terms:           input.Terms,
		ValidFrom:       input.ValidFrom,
		ValidUntil:      input.ValidUntil,
		DiscountPercent: input.DiscountPercent,
		ImageURL:        imageURL,
		Status:          models.PromotionStatusActive,
	}
	if err := promo.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := s.promotions.Create(promo); err != nil {
		return nil, apperrors.Storage(err, "create promotion")
	}
	if err := s.joins.Replace(promo.ID, packageIDs); err != nil {
		return nil, apperrors.Storage(err, "associate packages")
	}
	if err := s.pricer.Apply(promo.ID, promo.DiscountPercent, packageIDs); err != nil {
		return nil, err
	}

	return s.promotions.GetByID(promo.ID)
}

// Update edits a promotion. The old discount is restored before the new
// package set is written, because the selection and the percent may both
// have changed; the join rows are then replaced wholesale and the new
// discount applied. Editing always resets the status to active, which
// implicitly revives an expired promotion.
func (s *Service) Update(id uint, input Input, packageIDs []uint, uploadedImageURL string) (*models.Promotion, error) {
	promo, err := s.promotions.GetByID(id)
	if err != nil {
		return nil, err
	}

	selected, err := s.loadSelection(packageIDs)
	if err != nil {
		return nil, err
	}

	// Undo the old discount first; the restore reads the join to find
	// the currently affected packages.
	if err := s.pricer.Restore(promo.ID); err != nil {
		return nil, err
	}

	imageURL := promo.ImageURL
	if uploadedImageURL != "" {
		imageURL = uploadedImageURL
	} else if imageURL == "" {
		imageURL, err = PackageImage(packageIDs[0]).Resolve(selected)
		if err != nil {
			return nil, err
		}
	}

	if input.Title != "" {
		promo.Title = input.Title
	}
	promo.Description = input.Description
	promo.Terms = input.Terms
	if !input.ValidFrom.IsZero() {
		promo.ValidFrom = input.ValidFrom
	}
	if !input.ValidUntil.IsZero() {
		promo.ValidUntil = input.ValidUntil
	}
	if input.DiscountPercent != 0 {
		promo.DiscountPercent = input.DiscountPercent
	}
	promo.ImageURL = imageURL
	promo.Status = models.PromotionStatusActive

	if err := promo.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if err := s.promotions.Update(promo); err != nil {
		return nil, apperrors.Storage(err, "update promotion")
	}
	if err := s.joins.Replace(promo.ID, packageIDs); err != nil {
		return nil, apperrors.Storage(err, "replace package associations")
	}
	if err := s.pricer.Apply(promo.ID, promo.DiscountPercent, packageIDs); err != nil {
		return nil, err
	}

	return s.promotions.GetByID(promo.ID)
}

// Delete restores prices on the promotion's packages, removes the join
// rows and deletes the promotion. The restore must run first: it reads
// the join to find the affected packages. Returns the deleted promotion
// so the caller can clean up its stored image.
func (s *Service) Delete(id uint) (*models.Promotion, error) {
	promo, err := s.promotions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.pricer.Restore(promo.ID); err != nil {
		return nil, err
	}
	if err := s.joins.DeleteByPromotion(promo.ID); err != nil {
		return nil, apperrors.Storage(err, "delete package associations")
	}
	if err := s.promotions.Delete(promo.ID); err != nil {
		return nil, apperrors.Storage(err, "delete promotion")
	}
	return promo, nil
}

// Get returns a promotion with its packages.
func (s *Service) Get(id uint) (*models.Promotion, error) {
	return s.promotions.GetByID(id)
}

// List returns all promotions with their packages.
func (s *Service) List() ([]models.Promotion, error) {
	return s.promotions.GetAll()
}

// CheckExpired runs one sweep pass: every promotion still marked active
// whose validity window ended before now gets its package prices
// restored and its status flipped to expired. A failure on one promotion
// is logged and does not stop the sweep; the returned count covers only
// the promotions fully processed.
func (s *Service) CheckExpired(now time.Time) (int, error) {
	expired, err := s.promotions.FindExpiredActive(now)
	if err != nil {
		return 0, apperrors.Storage(err, "find expired promotions")
	}

	processed := 0
	for i := range expired {
		promo := &expired[i]
		if err := s.pricer.Restore(promo.ID); err != nil {
			log.Errorf("[Promotions] failed to restore prices for expired promotion %d: %v", promo.ID, err)
			continue
		}
		if err := s.promotions.UpdateStatus(promo.ID, models.PromotionStatusExpired); err != nil {
			log.Errorf("[Promotions] failed to expire promotion %d: %v", promo.ID, err)
			continue
		}
		processed++
	}
	return processed, nil
}

// loadSelection validates that the selection is non-empty and that every
// id exists, returning the loaded packages.
func (s *Service) loadSelection(packageIDs []uint) ([]models.Package, error) {
	if len(packageIDs) == 0 {
		return nil, apperrors.Validation("at least one package must be selected")
	}
	selected, err := s.packages.GetByIDs(packageIDs)
	if err != nil {
		return nil, apperrors.Storage(err, "load selected packages")
	}
	if len(selected) != len(packageIDs) {
		found := make(map[uint]bool, len(selected))
		for i := range selected {
			found[selected[i].ID] = true
		}
		for _, id := range packageIDs {
			if !found[id] {
				return nil, apperrors.NotFoundf("package %d not found", id)
			}
		}
	}
	return selected, nil
}
