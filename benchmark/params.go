package benchmark

import (
	"fmt"
	"time"

	"oio/config"
)

// JobParams holds the parameters for one benchmark run. The engine treats
// them as immutable once Run has been called.
type JobParams struct {
	Workload config.Workload // Operation under test: upload or download
	NumJobs  int             // Number of parallel workers
	FileSize int64           // Size of each object in bytes
	RunTime  time.Duration   // Length of the timed loop
	// RateLimit caps operations per second across all workers.
	// 0 means no limit.
	RateLimit int
}

func (p JobParams) validate() error {
	if p.Workload != config.WorkloadUpload && p.Workload != config.WorkloadDownload {
		return fmt.Errorf("invalid workload: %q", p.Workload)
	}
	if p.NumJobs < 1 {
		return fmt.Errorf("num_jobs must be at least 1, got %d", p.NumJobs)
	}
	if p.FileSize <= 0 {
		return fmt.Errorf("file_size must be greater than zero, got %d", p.FileSize)
	}
	if p.RunTime <= 0 {
		return fmt.Errorf("run_time must be a positive duration")
	}
	return nil
}
