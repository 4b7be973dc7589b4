package services

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

var allowedImageMimeTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/heic": ".heic",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".heic", ".heif", ".webp", ".gif"}

// ImageExtension picks the object extension for an upload: the original file
// extension when it is an image one, otherwise the one implied by mimeType.
func ImageExtension(fileName, mimeType string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if slices.Contains(allowedImageExtensions, ext) {
		return ext
	}
	return allowedImageMimeTypes[mimeType]
}

func IsAllowedImageType(mimeType string) bool {
	_, ok := allowedImageMimeTypes[mimeType]
	return ok
}


func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func GetEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
