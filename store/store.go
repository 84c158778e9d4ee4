// Package store provides the object storage abstraction the benchmark runs
// against, and backends for S3-compatible services, OCI Object Storage and
// the local filesystem.
package store

import (
	"context"
	"fmt"

	"oio/config"
)

// ObjectStore is the minimal capability the benchmark needs from a backend.
// Implementations must be safe for concurrent use by independent callers.
type ObjectStore interface {
	// Put stores data under key, overwriting any existing object.
	Put(ctx context.Context, key string, data []byte) error
	// Get returns the full content of the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
}

// New builds an ObjectStore from the service configuration. Backend
// construction failures (bad credentials file, unreachable namespace
// lookup) are fatal: no benchmark starts against a store that could not
// be built.
func New(svc config.Service) (ObjectStore, error) {
	switch svc.Type {
	case config.ServiceS3, config.ServiceOSS, config.ServiceMinio, config.ServiceCOS:
		return newS3Store(svc)
	case config.ServiceOCI:
		return newOCIStore(svc)
	case config.ServiceFS:
		return newFSStore(svc)
	default:
		return nil, fmt.Errorf("unsupported service type: %q", svc.Type)
	}
}
