package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReduceSumsAcrossWorkers(t *testing.T) {
	stats := []workerStats{
		{
			completed: 2,
			failed:    1,
			bytes:     2 * 1024,
			latencies: []time.Duration{10 * time.Millisecond, 20 * time.Millisecond},
		},
		{
			completed: 3,
			failed:    0,
			bytes:     3 * 1024,
			latencies: []time.Duration{30 * time.Millisecond, 40 * time.Millisecond, 50 * time.Millisecond},
		},
	}

	res := reduce(stats, 2*time.Second)

	assert.Equal(t, uint64(5), res.TotalOps)
	assert.Equal(t, uint64(1), res.ErrorCount)
	assert.Equal(t, int64(5*1024), res.TotalBytes)
	assert.Equal(t, 2*time.Second, res.Elapsed)
	assert.InDelta(t, float64(5*1024)/2.0, res.ThroughputBytesPerSec, 0.001)

	assert.Equal(t, 10*time.Millisecond, res.Latency.Min)
	assert.Equal(t, 50*time.Millisecond, res.Latency.Max)
	assert.Equal(t, 30*time.Millisecond, res.Latency.Avg)
	assert.Equal(t, 30*time.Millisecond, res.Latency.P50)
	assert.Equal(t, 40*time.Millisecond, res.Latency.P95)
	assert.Equal(t, 40*time.Millisecond, res.Latency.P99)
	// stdev of {10,20,30,40,50}ms is sqrt(200)ms
	assert.InDelta(t, 14.142, float64(res.Latency.Stdev)/float64(time.Millisecond), 0.01)

	// Each op moved 1024 bytes; the fastest op has the highest bandwidth.
	assert.InDelta(t, 1024.0/0.010, res.Bandwidth.Max, 0.001)
	assert.InDelta(t, 1024.0/0.050, res.Bandwidth.Min, 0.001)
}

func TestReduceZeroOpsGuard(t *testing.T) {
	stats := []workerStats{
		{failed: 4},
		{},
	}

	res := reduce(stats, 100*time.Millisecond)

	assert.Equal(t, uint64(0), res.TotalOps)
	assert.Equal(t, uint64(4), res.ErrorCount)
	assert.Zero(t, res.TotalBytes)
	assert.Zero(t, res.ThroughputBytesPerSec)
	assert.Zero(t, res.Latency)
	assert.Zero(t, res.Bandwidth)
}

func TestReduceSingleSample(t *testing.T) {
	stats := []workerStats{
		{completed: 1, bytes: 512, latencies: []time.Duration{5 * time.Millisecond}},
	}

	res := reduce(stats, time.Second)

	assert.Equal(t, uint64(1), res.TotalOps)
	assert.Equal(t, 5*time.Millisecond, res.Latency.P50)
	assert.Equal(t, 5*time.Millisecond, res.Latency.P99)
	assert.Equal(t, time.Duration(0), res.Latency.Stdev)
}

func TestPercentileIndexBounds(t *testing.T) {
	assert.Equal(t, 0, percentileIndex(1, 99))
	assert.Equal(t, 0, percentileIndex(2, 50))
	assert.Equal(t, 99, percentileIndex(100, 100))
	assert.Equal(t, 49, percentileIndex(100, 50))
}
