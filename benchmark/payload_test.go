package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadExactSize(t *testing.T) {
	for _, size := range []int64{1, 1024, 4096, 1<<20 + 3} {
		assert.Len(t, NewPayload(size, 0), int(size))
	}
}

func TestPayloadDeterministicPerSeed(t *testing.T) {
	assert.Equal(t, NewPayload(4096, 7), NewPayload(4096, 7))
	assert.NotEqual(t, NewPayload(4096, 7), NewPayload(4096, 8))
}
