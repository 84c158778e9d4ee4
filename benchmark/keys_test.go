package benchmark

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySequencesNeverCollide(t *testing.T) {
	alloc, err := NewKeyAllocator()
	require.NoError(t, err)

	const workers = 8
	const perWorker = 1000

	seen := make(map[string]struct{}, workers*perWorker)
	for w := 0; w < workers; w++ {
		seq := alloc.Sequence(w)
		for i := 0; i < perWorker; i++ {
			key := seq.Next()
			_, dup := seen[key]
			require.False(t, dup, "duplicate key %s", key)
			seen[key] = struct{}{}
		}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestSeedKeysDisjointFromSequences(t *testing.T) {
	alloc, err := NewKeyAllocator()
	require.NoError(t, err)

	seq := alloc.Sequence(3)
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, alloc.SeedKey(3), seq.Next())
	}
}

func TestRunPrefixesDiffer(t *testing.T) {
	a, err := NewKeyAllocator()
	require.NoError(t, err)
	b, err := NewKeyAllocator()
	require.NoError(t, err)

	assert.NotEqual(t, a.Sequence(0).Next(), b.Sequence(0).Next())
}

func TestSeedKeyStablePerWorker(t *testing.T) {
	alloc, err := NewKeyAllocator()
	require.NoError(t, err)

	for w := 0; w < 4; w++ {
		assert.Equal(t, alloc.SeedKey(w), alloc.SeedKey(w))
	}
	assert.NotEqual(t, alloc.SeedKey(0), alloc.SeedKey(1))
}

func ExampleKeySequence_Next() {
	seq := KeySequence{prefix: "oio-test-ff", workerID: 2}
	fmt.Println(seq.Next())
	fmt.Println(seq.Next())
	// Output:
	// oio-test-ff/2-0
	// oio-test-ff/2-1
}
