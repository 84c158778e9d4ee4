package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"oio/benchmark"
)

const (
	kib = 1024
	mib = 1024 * 1024
)

// Print writes the run summary to stdout.
func Print(res *benchmark.RunResult) {
	header := color.New(color.Bold)
	header.Printf("\n%s results:\n", strings.ToUpper(string(res.Workload)))

	fmt.Printf("Duration: %v\n", res.Elapsed.Round(time.Millisecond))
	fmt.Printf("Workers: %d\n", res.NumJobs)
	fmt.Printf("Object Size: %d bytes\n", res.FileSize)
	fmt.Printf("Completed Operations: %d\n", res.TotalOps)
	fmt.Printf("Failed Operations: %d\n", res.ErrorCount)
	fmt.Printf("Total Data: %.2f MiB\n", float64(res.TotalBytes)/mib)
	fmt.Printf("Data Throughput: %.2f MiB/s\n", res.ThroughputBytesPerSec/mib)
	if res.Elapsed > 0 {
		fmt.Printf("Object Throughput: %.2f objects/s\n", float64(res.TotalOps)/res.Elapsed.Seconds())
	}

	if res.TotalOps == 0 {
		fmt.Println("\nNo operations completed before the deadline.")
		return
	}

	fmt.Println("\nBandwidth:")
	fmt.Printf("  min(KiB/s): %.3f\n", res.Bandwidth.Min/kib)
	fmt.Printf("  max(KiB/s): %.3f\n", res.Bandwidth.Max/kib)
	fmt.Printf("  avg(KiB/s): %.3f\n", res.Bandwidth.Avg/kib)
	fmt.Printf("  stdev(KiB/s): %.3f\n", res.Bandwidth.Stdev/kib)
	fmt.Printf("  p99(KiB/s): %.3f\n", res.Bandwidth.P99/kib)
	fmt.Printf("  p95(KiB/s): %.3f\n", res.Bandwidth.P95/kib)
	fmt.Printf("  p50(KiB/s): %.3f\n", res.Bandwidth.P50/kib)

	fmt.Println("\nLatency:")
	fmt.Printf("  min(ms): %.3f\n", ms(res.Latency.Min))
	fmt.Printf("  max(ms): %.3f\n", ms(res.Latency.Max))
	fmt.Printf("  avg(ms): %.3f\n", ms(res.Latency.Avg))
	fmt.Printf("  stdev(ms): %.3f\n", ms(res.Latency.Stdev))
	fmt.Printf("  p99(ms): %.3f\n", ms(res.Latency.P99))
	fmt.Printf("  p95(ms): %.3f\n", ms(res.Latency.P95))
	fmt.Printf("  p50(ms): %.3f\n", ms(res.Latency.P50))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
