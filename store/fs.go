package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"oio/config"
)

// fsStore keeps objects as plain files under a root directory. Useful for
// exercising the engine without network credentials.
type fsStore struct {
	root string
}

func newFSStore(svc config.Service) (*fsStore, error) {
	root := svc.Prefix
	if root == "" {
		root = filepath.Join(os.TempDir(), "oio")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create fs root %s: %w", root, err)
	}
	return &fsStore{root: root}, nil
}

func (s *fsStore) Put(_ context.Context, key string, data []byte) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	return nil
}

func (s *fsStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}
