package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/api/metrics"
	"github.com/thaalam/admin-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes media jobs to a fixed set of workers using consistent
// hashing on the podcast id, guaranteeing per-record processing order.
type Dispatcher struct {
	workers   []chan ports.MediaJob
	processor ports.MediaProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.MediaProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.MediaJob, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.MediaJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its podcast id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.MediaJob) {
	d.workers[d.shardIndex(job.PodcastID)] <- job
}

// shardIndex maps a podcast id deterministically to a worker index.
func (d *Dispatcher) shardIndex(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.MediaJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.processor.Process(ctx, job); err != nil {
				metrics.MediaJobsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("podcast_id", job.PodcastID).
					Int("worker_id", id).
					Msg("media processing failed")
				continue
			}
			metrics.MediaJobsTotal.WithLabelValues("ok").Inc()
			metrics.MediaProcessingDuration.Observe(time.Since(start).Seconds())
		}
	}
}
