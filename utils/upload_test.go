package utils

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageFile(t *testing.T) {
	ok := &multipart.FileHeader{Filename: "photo.JPG", Size: 1024}
	assert.NoError(t, ValidateImageFile(ok))

	webp := &multipart.FileHeader{Filename: "photo.webp", Size: 1024}
	assert.NoError(t, ValidateImageFile(webp))

	tooBig := &multipart.FileHeader{Filename: "photo.jpg", Size: 6 * 1024 * 1024}
	assert.Error(t, ValidateImageFile(tooBig))

	badType := &multipart.FileHeader{Filename: "invoice.pdf", Size: 1024}
	assert.Error(t, ValidateImageFile(badType))
}

func TestSanitizeObjectName(t *testing.T) {
	assert.Equal(t, "mi_foto_1_.jpg", SanitizeObjectName("mi foto (1).jpg"))
	assert.Equal(t, "cafe-y-te.png", SanitizeObjectName("cafe-y-te.png"))
	assert.Equal(t, "upload", SanitizeObjectName(""))
}

func TestBuildImageKey(t *testing.T) {
	key := BuildImageKey("products/42/", "my photo.jpg")

	assert.True(t, strings.HasPrefix(key, "products/42/"))
	assert.True(t, strings.HasSuffix(key, "-my_photo.jpg"))

	// keys must be unique even for the same filename
	assert.NotEqual(t, key, BuildImageKey("products/42/", "my photo.jpg"))
}
