package utils

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/mercadoverde/storefront/config"
)

// StorageObject is one entry of a bucket listing
type StorageObject struct {
	Key      string
	Size     int64
	Uploaded time.Time
}

// PublicURL maps a storage key to its publicly fetchable URL. Pure: it
// only joins the configured public base with the key.
func PublicURL(key string) string {
	base := strings.TrimSuffix(config.StoragePublicBase, "/")
	return base + "/" + strings.TrimPrefix(key, "/")
}

// ListStorageObjects lists every object under the given prefix
func ListStorageObjects(ctx context.Context, prefix string) ([]StorageObject, error) {
	objects := []StorageObject{}
	for obj := range config.Storage.ListObjects(ctx, config.StorageBucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("storage listing failed for prefix %s: %w", prefix, obj.Err)
		}
		objects = append(objects, StorageObject{
			Key:      obj.Key,
			Size:     obj.Size,
			Uploaded: obj.LastModified,
		})
	}
	return objects, nil
}

// PutStorageObject uploads an object under the given key
func PutStorageObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := config.Storage.PutObject(ctx, config.StorageBucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("storage upload failed for key %s: %w", key, err)
	}
	return nil
}

// DeleteStorageObject removes a single object
func DeleteStorageObject(ctx context.Context, key string) error {
	return config.Storage.RemoveObject(ctx, config.StorageBucket, key, minio.RemoveObjectOptions{})
}

// PurgeStoragePrefix removes every object under a prefix, best-effort:
// individual delete failures are logged and skipped.
func PurgeStoragePrefix(ctx context.Context, prefix string) {
	objects, err := ListStorageObjects(ctx, prefix)
	if err != nil {
		LogError("Failed to list %s for purge: %v", prefix, err)
		return
	}
	for _, obj := range objects {
		if err := DeleteStorageObject(ctx, obj.Key); err != nil {
			LogError("Failed to delete %s: %v", obj.Key, err)
		}
	}
}
