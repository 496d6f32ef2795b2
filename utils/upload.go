package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var unsafeKeyChars = regexp.MustCompile(`[^\w.\-]+`)

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	// Check file size (max 5MB)
	if file.Size > 5*1024*1024 {
		return fmt.Errorf("file size exceeds 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf("invalid file type. Allowed types: jpg, jpeg, png, gif, webp")
	}

	return nil
}

// SanitizeObjectName strips characters that have no business in a
// storage key
func SanitizeObjectName(name string) string {
	if name == "" {
		name = "upload"
	}
	return unsafeKeyChars.ReplaceAllString(name, "_")
}

// BuildImageKey generates a unique storage key for an upload under the
// owner's prefix, e.g. products/42/1712000000000-3f2a91bc-photo.jpg
func BuildImageKey(prefix string, filename string) string {
	safeName := SanitizeObjectName(filename)
	nonce := uuid.New().String()[:8]
	return fmt.Sprintf("%s%d-%s-%s", prefix, time.Now().UnixMilli(), nonce, safeName)
}
