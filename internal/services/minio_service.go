package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// SnapshotStore writes JSON documents to object storage.
type SnapshotStore interface {
	EnsureBucket(ctx context.Context) error
	PutJSON(ctx context.Context, objectName string, v any) error
	Ping(ctx context.Context) error
}

type minioSnapshotStore struct {
	client *minio.Client
	bucket string
}

// NewMinioSnapshotStore connects to an S3-compatible endpoint. region may be
// empty, in which case the client discovers it on first use.
func NewMinioSnapshotStore(endpoint, accessKey, secretKey, bucket, region string, useSSL bool) (SnapshotStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &minioSnapshotStore{client: client, bucket: bucket}, nil
}

func (m *minioSnapshotStore) EnsureBucket(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.bucket, err)
	}
	if found {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", m.bucket, err)
	}
	return nil
}

func (m *minioSnapshotStore) PutJSON(ctx context.Context, objectName string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", objectName, err)
	}
	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}

// Ping checks that the endpoint answers and the bucket is reachable.
func (m *minioSnapshotStore) Ping(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.bucket); err != nil {
		return fmt.Errorf("failed to reach bucket %s: %w", m.bucket, err)
	}
	return nil
}
