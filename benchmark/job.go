// Package benchmark implements the workload execution engine: parallel
// workers running timed upload or download loops against an object store,
// with per-worker stats merged into one result after all workers stop.
package benchmark

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"oio/config"
	"oio/store"
)

// Job runs one benchmark against an object store.
type Job struct {
	store  store.ObjectStore
	params JobParams
}

// NewJob creates a job. The store is the only resource shared between
// workers and must be safe for concurrent calls.
func NewJob(st store.ObjectStore, params JobParams) *Job {
	return &Job{store: st, params: params}
}

// Run executes the configured workload and blocks until every worker has
// finished. Per-operation failures are counted in the result, not returned
// as errors; only setup failures (invalid parameters, download seeding)
// abort the run, and then no result is produced.
//
// Canceling ctx stops workers at the next loop iteration; the partial run
// still aggregates into a result.
func (j *Job) Run(ctx context.Context) (*RunResult, error) {
	if err := j.params.validate(); err != nil {
		return nil, err
	}

	keys, err := NewKeyAllocator()
	if err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if j.params.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(j.params.RateLimit), 1)
	}

	workers := make([]*worker, j.params.NumJobs)
	for i := range workers {
		workers[i] = &worker{
			id:       i,
			workload: j.params.Workload,
			store:    j.store,
			limiter:  limiter,
			payload:  NewPayload(j.params.FileSize, int64(i)),
			keys:     keys.Sequence(i),
			seedKey:  keys.SeedKey(i),
		}
	}

	// Seeding happens before the clock starts, so setup cost never counts
	// against the timed window.
	if j.params.Workload == config.WorkloadDownload {
		for _, w := range workers {
			if err := w.seed(ctx); err != nil {
				return nil, err
			}
		}
	}

	log.WithFields(log.Fields{
		"workload":  j.params.Workload,
		"num_jobs":  j.params.NumJobs,
		"file_size": j.params.FileSize,
		"run_time":  j.params.RunTime,
	}).Info("starting benchmark run")

	start := time.Now()
	deadline := StartDeadline(j.params.RunTime)

	results := make(chan workerStats, len(workers))
	var wg sync.WaitGroup
	for _, w := range workers {
		w.deadline = deadline
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			results <- w.run(ctx)
		}(w)
	}

	// Barrier: no aggregation until every worker has handed off its stats.
	wg.Wait()
	close(results)
	elapsed := time.Since(start)

	stats := make([]workerStats, 0, len(workers))
	for s := range results {
		stats = append(stats, s)
	}

	res := reduce(stats, elapsed)
	res.Workload = j.params.Workload
	res.NumJobs = j.params.NumJobs
	res.FileSize = j.params.FileSize

	log.WithFields(log.Fields{
		"total_ops":   res.TotalOps,
		"error_count": res.ErrorCount,
		"elapsed":     res.Elapsed,
	}).Info("benchmark run finished")

	return res, nil
}
