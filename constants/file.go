package constants

import "strings"

// TextSources holds the allowed values for the source field of raw menu text.
var TextSources = []string{"OCR", "MANUAL"}

// AllowedExtensions holds the default allowed file extensions for menu image ingestion.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"heif": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsHEICExt reports whether a normalized extension is a HEIC/HEIF variant.
func IsHEICExt(ext string) bool {
	return ext == "heic" || ext == "heif"
}

// IsAllowedExt reports whether a normalized extension is an accepted menu image type.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[ext]
	return ok
}
