package benchmark

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyAllocator hands out object keys under a run-scoped prefix. Upload keys
// embed the worker id and a per-worker sequence number, so the key spaces of
// any two workers are disjoint by construction and no coordination is needed
// between them.
type KeyAllocator struct {
	prefix string
}

// NewKeyAllocator creates an allocator with a fresh random run prefix, so
// repeated runs against the same bucket never touch each other's objects.
func NewKeyAllocator() (*KeyAllocator, error) {
	suffix, err := randomHex(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate run prefix: %w", err)
	}
	return &KeyAllocator{prefix: "oio-test-" + suffix}, nil
}

// Sequence returns the upload key sequence owned by one worker. Next must
// only be called by that worker.
func (a *KeyAllocator) Sequence(workerID int) *KeySequence {
	return &KeySequence{prefix: a.prefix, workerID: workerID}
}

// SeedKey returns the fixed per-worker key a download workload reads from.
// The "seed" suffix keeps it out of every upload sequence space.
func (a *KeyAllocator) SeedKey(workerID int) string {
	return fmt.Sprintf("%s/%d-seed", a.prefix, workerID)
}

// KeySequence generates fresh upload keys for a single worker.
type KeySequence struct {
	prefix   string
	workerID int
	next     uint64
}

// Next returns a key that has never been returned before, by this sequence
// or any other worker's.
func (s *KeySequence) Next() string {
	key := fmt.Sprintf("%s/%d-%d", s.prefix, s.workerID, s.next)
	s.next++
	return key
}

func randomHex(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
