package constants

import "strings"

// File formats dispatched on by the extraction engine.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// MaxUploadBytes is the fixed ceiling for a single upload.
const MaxUploadBytes = 10 << 20 // 10 MiB

// AllowedExtensions holds the accepted upload extensions, lowercased, sans dot.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a normalized extension is accepted for upload.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// MapExtToFormat maps a normalized extension to an extraction format.
// Unknown extensions map to "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	default:
		return ""
	}
}
