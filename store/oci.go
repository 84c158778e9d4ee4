package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"oio/config"
)

// ociStore talks to OCI Object Storage through the native SDK.
type ociStore struct {
	client    objectstorage.ObjectStorageClient
	namespace string
	bucket    string
	prefix    string
}

func newOCIStore(svc config.Service) (*ociStore, error) {
	var provider common.ConfigurationProvider
	if svc.OCIConfigFile != "" {
		profile := svc.OCIProfile
		if profile == "" {
			profile = "DEFAULT"
		}
		provider = common.CustomProfileConfigProvider(svc.OCIConfigFile, profile)
	} else {
		provider = common.DefaultConfigProvider()
	}

	client, err := objectstorage.NewObjectStorageClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build oci client: %w", err)
	}
	httpClient, err := newHTTPClient()
	if err != nil {
		return nil, err
	}
	client.HTTPClient = httpClient

	// The namespace can be pinned in the config to skip the lookup call.
	namespace := svc.Namespace
	if namespace == "" {
		resp, err := client.GetNamespace(context.Background(), objectstorage.GetNamespaceRequest{})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch oci namespace: %w", err)
		}
		namespace = *resp.Value
	}

	return &ociStore{
		client:    client,
		namespace: namespace,
		bucket:    svc.Bucket,
		prefix:    normalizePrefix(svc.Prefix),
	}, nil
}

func (s *ociStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, objectstorage.PutObjectRequest{
		NamespaceName: common.String(s.namespace),
		BucketName:    common.String(s.bucket),
		ObjectName:    common.String(s.prefix + key),
		ContentLength: common.Int64(int64(len(data))),
		PutObjectBody: io.NopCloser(bytes.NewReader(data)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

func (s *ociStore) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.client.GetObject(ctx, objectstorage.GetObjectRequest{
		NamespaceName: common.String(s.namespace),
		BucketName:    common.String(s.bucket),
		ObjectName:    common.String(s.prefix + key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %w", key, err)
	}
	defer resp.Content.Close()

	data, err := io.ReadAll(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}
