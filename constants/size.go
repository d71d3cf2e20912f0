package constants

import "strings"

// ImageSize is the caller-facing size class for generated images.
type ImageSize string

// Stable values (store these exact strings in DB).
const (
	SizeSmall  ImageSize = "small"  // 256x256
	SizeMedium ImageSize = "medium" // 512x512
	SizeLarge  ImageSize = "large"  // 1024x1024
)

// ImageSizes holds the allowed size classes for the size field in Batch.
var ImageSizes = []string{string(SizeSmall), string(SizeMedium), string(SizeLarge)}

// Pixels returns the square pixel dimension of a size class.
func (s ImageSize) Pixels() int {
	switch s {
	case SizeSmall:
		return 256
	case SizeLarge:
		return 1024
	default:
		return 512
	}
}

// ParseImageSize maps a user-supplied string to a size class.
// Unknown values fall back to medium with ok=false.
func ParseImageSize(s string) (ImageSize, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SizeSmall):
		return SizeSmall, true
	case string(SizeMedium):
		return SizeMedium, true
	case string(SizeLarge):
		return SizeLarge, true
	}
	return SizeMedium, false
}
