package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinIOObjectStore implements ObjectStore on any S3 compatible service
// (MinIO, S3, R2)
type MinIOObjectStore struct {
	name       string
	client     *minio.Client
	bucketName string
	logger     *zap.Logger
}

// NewMinIOObjectStore connects to the bucket and checks that it exists.
// The bucket is never created: this server only reads.
func NewMinIOObjectStore(ctx context.Context, name, endpoint, accessKey, secretKey, bucketName, region string, useSSL bool, logger *zap.Logger) (*MinIOObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucketName)
	}

	return &MinIOObjectStore{
		name:       name,
		client:     client,
		bucketName: bucketName,
		logger:     logger,
	}, nil
}

// Name returns the store name
func (m *MinIOObjectStore) Name() string {
	return m.name
}

// Get reads the object. Preconditions are evaluated against the stat result
// and the read is pinned to the same ETag, so a concurrent overwrite fails
// instead of mixing versions.
func (m *MinIOObjectStore) Get(ctx context.Context, key string, opts GetOptions) (ReadResult, error) {
	stat, err := m.client.StatObject(ctx, m.bucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if isMinIONotFound(err) {
			return notFound(), nil
		}
		return ReadResult{}, fmt.Errorf("failed to stat object %s in %s: %w", key, m.name, err)
	}

	info := minioObjectInfo(stat)

	if opts.Conditions.NotModified(info.ETag) {
		m.logger.Debug("object preconditions not met",
			zap.String("store", m.name),
			zap.String("key", key),
			zap.String("etag", info.ETag))
		return notModified(info), nil
	}

	byteRange, err := opts.Range.Resolve(info.Size)
	if err != nil {
		return ReadResult{}, err
	}

	getOpts := minio.GetObjectOptions{}
	if err := getOpts.SetMatchETag(stat.ETag); err != nil {
		return ReadResult{}, fmt.Errorf("failed to pin object version: %w", err)
	}
	if opts.Range.IsPartial() {
		if err := getOpts.SetRange(int64(byteRange.Start), int64(byteRange.End)); err != nil {
			return ReadResult{}, fmt.Errorf("failed to set object range: %w", err)
		}
	}

	object, err := m.client.GetObject(ctx, m.bucketName, key, getOpts)
	if err != nil {
		return ReadResult{}, fmt.Errorf("failed to get object %s from %s: %w", key, m.name, err)
	}

	// GetObject is lazy; Stat issues the request and surfaces its error.
	if _, err := object.Stat(); err != nil {
		_ = object.Close()
		if isMinIONotFound(err) {
			return notFound(), nil
		}
		return ReadResult{}, fmt.Errorf("failed to read object %s from %s: %w", key, m.name, err)
	}

	result := &Object{Info: info, Body: object}
	if opts.Range.IsPartial() {
		result.Range = &byteRange
	}
	return found(result), nil
}

// Head reads the object's metadata
func (m *MinIOObjectStore) Head(ctx context.Context, key string) (ReadResult, error) {
	stat, err := m.client.StatObject(ctx, m.bucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if isMinIONotFound(err) {
			return notFound(), nil
		}
		return ReadResult{}, fmt.Errorf("failed to stat object %s in %s: %w", key, m.name, err)
	}

	return found(&Object{Info: minioObjectInfo(stat)}), nil
}

// Close closes the MinIO connection
func (m *MinIOObjectStore) Close() error {
	return nil
}

func minioObjectInfo(stat minio.ObjectInfo) ObjectInfo {
	info := ObjectInfo{
		Size:         uint64(stat.Size),
		ETag:         QuoteETag(stat.ETag),
		LastModified: stat.LastModified,
		ContentType:  stat.ContentType,
	}

	if stat.Metadata != nil {
		info.ContentDisposition = stat.Metadata.Get(HeaderContentDisposition)
		info.ContentEncoding = stat.Metadata.Get(HeaderContentEncoding)
		info.ContentLanguage = stat.Metadata.Get(HeaderContentLanguage)
	}

	return info
}

// isMinIONotFound reports whether err means the key is absent. A missing
// bucket is a configuration fault and is not treated as a miss.
func isMinIONotFound(err error) bool {
	errResp := minio.ToErrorResponse(err)
	switch errResp.Code {
	case "NoSuchKey", "NoSuchVersion":
		return true
	case "NoSuchBucket":
		return false
	}
	return errResp.StatusCode == http.StatusNotFound
}
