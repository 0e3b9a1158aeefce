package upload

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// ThumbnailWidth is the maximum width of generated list thumbnails.
const ThumbnailWidth = 480

// Thumbnail decodes an uploaded image and returns a JPEG thumbnail
// at most ThumbnailWidth pixels wide. Smaller images are re-encoded
// without resizing so the thumbnail variant always exists.
func Thumbnail(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > ThumbnailWidth {
		img = imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// ThumbnailKey derives the object key for the thumbnail variant of an
// original image key, e.g. uploads/2025/01/abc.jpg -> uploads/2025/01/abc_thumb.jpg
func ThumbnailKey(originalKey string) string {
	base := originalKey
	if idx := strings.LastIndexByte(originalKey, '.'); idx >= 0 {
		base = originalKey[:idx]
	}
	return base + "_thumb.jpg"
}
