package promotion

import (
	"github.com/tanahmerapi/backend/app/models"
	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

// ImageSource picks the cover image for a promotion. An explicitly
// uploaded URL always wins; otherwise the image is borrowed from the
// first selected package. Resolution happens once at create/update time
// and the result is stored on the promotion, never re-derived.
type ImageSource struct {
	explicitURL string
	packageID   uint
}

// ExplicitImage uses an uploaded image URL as the promotion cover.
func ExplicitImage(url string) ImageSource {
	return ImageSource{explicitURL: url}
}

// PackageImage derives the promotion cover from a package's image.
func PackageImage(packageID uint) ImageSource {
	return ImageSource{packageID: packageID}
}

// Resolve returns the cover URL, looking the package up in the already
// loaded selection when the source is package-derived.
func (s ImageSource) Resolve(selected []models.Package) (string, error) {
	if s.explicitURL != "" {
		return s.explicitURL, nil
	}
	for i := range selected {
		if selected[i].ID == s.packageID && selected[i].ImageURL != "" {
			return selected[i].ImageURL, nil
		}
	}
	return "", apperrors.Validation("no promotion image available: upload one or select a package with an image")
}
