package benchmark

import (
	"math"
	"sort"
	"time"

	"oio/config"
)

// RunResult is the aggregate outcome of one run. It is built once, after
// every worker has stopped, and never mutated afterwards.
type RunResult struct {
	Workload config.Workload
	NumJobs  int
	FileSize int64

	// TotalOps counts successful operations; ErrorCount counts failed ones.
	TotalOps   uint64
	ErrorCount uint64
	// TotalBytes is the payload volume moved by successful operations.
	TotalBytes int64
	Elapsed    time.Duration

	// ThroughputBytesPerSec is TotalBytes over Elapsed, or zero when
	// nothing completed.
	ThroughputBytesPerSec float64

	Latency   LatencySummary
	Bandwidth BandwidthSummary
}

// LatencySummary describes the pooled per-operation latency samples of all
// workers. Zero-valued when no operation completed.
type LatencySummary struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Stdev time.Duration
	P50   time.Duration
	P95   time.Duration
	P99   time.Duration
}

// BandwidthSummary describes per-operation transfer rates in bytes per
// second. Zero-valued when no operation completed.
type BandwidthSummary struct {
	Min   float64
	Max   float64
	Avg   float64
	Stdev float64
	P50   float64
	P95   float64
	P99   float64
}

// reduce merges the workers' private tallies into one result. Callers must
// guarantee all workers have stopped first; reduce itself does no
// synchronization.
func reduce(stats []workerStats, elapsed time.Duration) *RunResult {
	res := &RunResult{Elapsed: elapsed}

	var latencies []time.Duration
	for _, s := range stats {
		res.TotalOps += s.completed
		res.ErrorCount += s.failed
		res.TotalBytes += s.bytes
		latencies = append(latencies, s.latencies...)
	}

	// Degenerate run: the deadline beat every operation. Still a valid
	// result, just with nothing to summarize.
	if res.TotalOps == 0 || elapsed <= 0 {
		return res
	}

	res.ThroughputBytesPerSec = float64(res.TotalBytes) / elapsed.Seconds()

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	res.Latency = summarizeLatency(latencies)

	// Every successful op moved the same number of bytes, so per-op
	// bandwidth is a direct function of its latency.
	perOpBytes := float64(res.TotalBytes) / float64(res.TotalOps)
	res.Bandwidth = summarizeBandwidth(latencies, perOpBytes)

	return res
}

func summarizeLatency(sorted []time.Duration) LatencySummary {
	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}
	avg := sum / time.Duration(len(sorted))

	var sqsum float64
	for _, l := range sorted {
		d := float64(l - avg)
		sqsum += d * d
	}
	stdev := time.Duration(math.Sqrt(sqsum / float64(len(sorted))))

	return LatencySummary{
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Avg:   avg,
		Stdev: stdev,
		P50:   percentileDuration(sorted, 50),
		P95:   percentileDuration(sorted, 95),
		P99:   percentileDuration(sorted, 99),
	}
}

func summarizeBandwidth(sortedLatencies []time.Duration, perOpBytes float64) BandwidthSummary {
	rates := make([]float64, len(sortedLatencies))
	for i, l := range sortedLatencies {
		rates[i] = perOpBytes / l.Seconds()
	}
	sort.Float64s(rates)

	var sum float64
	for _, r := range rates {
		sum += r
	}
	avg := sum / float64(len(rates))

	var sqsum float64
	for _, r := range rates {
		d := r - avg
		sqsum += d * d
	}

	return BandwidthSummary{
		Min:   rates[0],
		Max:   rates[len(rates)-1],
		Avg:   avg,
		Stdev: math.Sqrt(sqsum / float64(len(rates))),
		P50:   percentileFloat(rates, 50),
		P95:   percentileFloat(rates, 95),
		P99:   percentileFloat(rates, 99),
	}
}

// percentileDuration picks the nearest-rank sample from an ascending slice.
func percentileDuration(sorted []time.Duration, pct float64) time.Duration {
	return sorted[percentileIndex(len(sorted), pct)]
}

func percentileFloat(sorted []float64, pct float64) float64 {
	return sorted[percentileIndex(len(sorted), pct)]
}

func percentileIndex(n int, pct float64) int {
	return int(float64(n-1) * pct / 100.0)
}
