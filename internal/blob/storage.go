// Package blob uploads media assets to object storage and resolves durable
// public read URLs for them.
package blob

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage wraps the object-store client and the target bucket.
type Storage struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// Config holds the object-store connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// New connects to the object store and ensures the bucket exists.
func New(ctx context.Context, cfg *Config) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &Storage{client: client, bucket: cfg.Bucket, useSSL: cfg.UseSSL}, nil
}

// UploadVideo stores raw video bytes under videos/{ownerID}/{filename} and
// returns the public read URL.
func (s *Storage) UploadVideo(ctx context.Context, ownerID, filename string, content []byte, contentType string) (string, error) {
	object := fmt.Sprintf("videos/%s/%s", ownerID, filename)
	return s.upload(ctx, object, content, contentType)
}

// UploadThumbnail stores thumbnail bytes under
// thumbnails/{ownerID}/{recordID}/thumbnail.jpg and returns the public
// read URL.
func (s *Storage) UploadThumbnail(ctx context.Context, ownerID string, recordID int64, content []byte) (string, error) {
	object := fmt.Sprintf("thumbnails/%s/%d/thumbnail.jpg", ownerID, recordID)
	return s.upload(ctx, object, content, "image/jpeg")
}

func (s *Storage) upload(ctx context.Context, object string, content []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, object,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", object, err)
	}
	return s.publicURL(object), nil
}

// publicURL builds the non-expiring read URL for an object. The bucket has a
// public read policy; the app's feed fetches these URLs directly.
func (s *Storage) publicURL(object string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, object)
}
