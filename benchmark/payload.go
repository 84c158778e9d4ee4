package benchmark

import (
	"math/rand"
)

// NewPayload returns a buffer of exactly size bytes filled with
// pseudo-random content. Each worker allocates one payload at startup and
// reuses it for every operation, so the timed loop measures storage calls,
// not the allocator. Seeding by worker id keeps the content deterministic
// across runs.
func NewPayload(size int64, seed int64) []byte {
	buf := make([]byte, size)
	rng := rand.New(rand.NewSource(seed))
	rng.Read(buf)
	return buf
}
