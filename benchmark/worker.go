package benchmark

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"oio/config"
	"oio/store"
)

// opOutcome is the result of a single operation.
type opOutcome struct {
	ok      bool
	bytes   int64
	latency time.Duration
}

// workerStats is a worker's private tally. It is mutated only by its owning
// worker and handed to the aggregator by value after the worker stops.
type workerStats struct {
	completed uint64
	failed    uint64
	bytes     int64
	latencies []time.Duration
}

type worker struct {
	id       int
	workload config.Workload
	store    store.ObjectStore
	deadline *Deadline
	limiter  *rate.Limiter
	payload  []byte
	keys     *KeySequence
	seedKey  string
	stats    workerStats
}

// seed uploads the object a download workload will read. Called once per
// worker before the clock starts; a failure here is fatal for the run.
func (w *worker) seed(ctx context.Context) error {
	if err := w.store.Put(ctx, w.seedKey, w.payload); err != nil {
		return fmt.Errorf("failed to seed object %s: %w", w.seedKey, err)
	}
	return nil
}

// run executes the timed loop until the shared deadline expires, then
// returns the worker's tally. The deadline is polled once per iteration: an
// operation already in flight when it expires runs to completion, so a run
// can overshoot by at most one operation's latency per worker.
func (w *worker) run(ctx context.Context) workerStats {
	for !w.deadline.Expired() && ctx.Err() == nil {
		if w.limiter != nil {
			if err := w.limiter.Wait(ctx); err != nil {
				break
			}
		}
		out := w.runOne(ctx)
		if out.ok {
			w.stats.completed++
			w.stats.bytes += out.bytes
			w.stats.latencies = append(w.stats.latencies, out.latency)
		} else {
			w.stats.failed++
		}
	}
	return w.stats
}

// runOne performs exactly one operation and measures its wall-clock
// latency. Failures are counted by the caller, never retried.
func (w *worker) runOne(ctx context.Context) opOutcome {
	start := time.Now()

	if w.workload == config.WorkloadUpload {
		key := w.keys.Next()
		err := w.store.Put(ctx, key, w.payload)
		latency := time.Since(start)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{"worker": w.id, "key": key}).
				Debug("upload failed")
			return opOutcome{}
		}
		return opOutcome{ok: true, bytes: int64(len(w.payload)), latency: latency}
	}

	data, err := w.store.Get(ctx, w.seedKey)
	latency := time.Since(start)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"worker": w.id, "key": w.seedKey}).
			Debug("download failed")
		return opOutcome{}
	}
	if int64(len(data)) != int64(len(w.payload)) {
		log.WithFields(log.Fields{
			"worker": w.id,
			"key":    w.seedKey,
			"want":   len(w.payload),
			"got":    len(data),
		}).Debug("download returned wrong object size")
		return opOutcome{}
	}
	return opOutcome{ok: true, bytes: int64(len(data)), latency: latency}
}
