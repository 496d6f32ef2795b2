package config

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage is the S3-compatible object store client (Cloudflare R2)
var Storage *minio.Client

// StorageBucket is the bucket all catalog images live in
var StorageBucket string

// StoragePublicBase is the public base URL objects are served from
var StoragePublicBase string

// InitStorage initializes the object storage client
func InitStorage() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	client, err := minio.New(config.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.StorageAccessKey, config.StorageSecretKey, ""),
		Secure: config.StorageUseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to object storage: %v", err))
	}

	Storage = client
	StorageBucket = config.StorageBucket
	StoragePublicBase = config.StoragePublicBase
}
