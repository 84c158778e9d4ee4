package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"oio/config"
)

// s3Store talks to any S3-compatible service (AWS S3, MinIO, Alibaba OSS,
// Tencent COS) through their S3 endpoints.
type s3Store struct {
	client *minio.Client
	bucket string
	prefix string
}

func newS3Store(svc config.Service) (*s3Store, error) {
	endpoint, secure := splitEndpoint(svc.Endpoint)

	transport, err := newTransport()
	if err != nil {
		return nil, err
	}

	lookup := minio.BucketLookupAuto
	if svc.VirtualHostedStyle {
		lookup = minio.BucketLookupDNS
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(svc.AccessKey, svc.SecretKey, ""),
		Secure:       secure,
		Region:       svc.Region,
		Transport:    transport,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s client: %w", svc.Type, err)
	}

	return &s3Store{
		client: client,
		bucket: svc.Bucket,
		prefix: normalizePrefix(svc.Prefix),
	}, nil
}

func (s *s3Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.prefix+key,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

func (s *s3Store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.prefix+key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

// splitEndpoint strips an optional scheme prefix from the configured
// endpoint. Plain hostnames default to TLS.
func splitEndpoint(endpoint string) (host string, secure bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), true
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), false
	default:
		return endpoint, true
	}
}

// normalizePrefix ensures a non-empty prefix ends with exactly one slash.
func normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return strings.TrimSuffix(prefix, "/") + "/"
}
