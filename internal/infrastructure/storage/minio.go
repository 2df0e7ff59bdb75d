package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fisherypulse/councilpulse/pkg/config"
)

// Archive stores raw source payloads so a sync run can be replayed or
// debugged after the upstream page changes.
type Archive interface {
	// PutRaw stores one fetched payload and returns the object name
	PutRaw(ctx context.Context, source string, payload []byte) (string, error)

	// List enumerates archived payloads, optionally narrowed to one source
	List(ctx context.Context, source string) ([]ObjectInfo, error)

	// PresignGet returns a time-limited download URL for one object
	PresignGet(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// ObjectInfo describes one archived payload
type ObjectInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// MinIOArchive implements Archive on a MinIO bucket
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchive creates the archive client and ensures the bucket exists
func NewMinIOArchive(cfg *config.StorageConfig) (*MinIOArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	a := &MinIOArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return a, nil
}

// ensureBucket creates the bucket when it does not exist yet
func (a *MinIOArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// PutRaw stores one fetched payload under raw/<source>/<timestamp>.json
func (a *MinIOArchive) PutRaw(ctx context.Context, source string, payload []byte) (string, error) {
	objectName := fmt.Sprintf("raw/%s/%s.json", source, time.Now().UTC().Format("20060102T150405Z"))

	_, err := a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload payload: %w", err)
	}

	return objectName, nil
}

// List enumerates archived payloads under raw/, or raw/<source>/ when a
// source is given
func (a *MinIOArchive) List(ctx context.Context, source string) ([]ObjectInfo, error) {
	prefix := "raw/"
	if source != "" {
		prefix = fmt.Sprintf("raw/%s/", source)
	}

	var out []ObjectInfo
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive objects: %w", obj.Err)
		}
		out = append(out, ObjectInfo{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return out, nil
}

// PresignGet returns a presigned download URL for one archived payload
func (a *MinIOArchive) PresignGet(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return u.String(), nil
}
