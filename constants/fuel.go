package constants

import (
	"path/filepath"
	"strings"
)

// FuelType is the canonical tag for a recognized fuel product.
type FuelType string

const (
	FuelDiesel FuelType = "diesel"
	FuelSP95   FuelType = "sp95"
	FuelSP98   FuelType = "sp98"
	FuelGPL    FuelType = "gpl"
)

// Valid reports whether f is one of the recognized fuel tags.
func (f FuelType) Valid() bool {
	switch f {
	case FuelDiesel, FuelSP95, FuelSP98, FuelGPL:
		return true
	}
	return false
}

// FuelTypes holds the allowed fuel type tags, for schema validation.
var FuelTypes = []string{
	string(FuelDiesel),
	string(FuelSP95),
	string(FuelSP98),
	string(FuelGPL),
}

// AllowedExtensions holds the default allowed file extensions for receipt intake.
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

// MIMEForPath maps a filename to the MIME type recorded on the import job.
// Unknown extensions fall back to application/octet-stream.
func MIMEForPath(path string) string {
	switch NormalizeExt(filepath.Ext(path)) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
