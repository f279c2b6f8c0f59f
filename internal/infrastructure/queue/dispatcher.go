package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/api/metrics"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes contact events to a fixed set of workers using consistent
// hashing on the investor ID, guaranteeing per-investor event ordering.
type Dispatcher struct {
	workers []chan ports.ContactEventInput
	service ports.OutreachService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.OutreachService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ContactEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ContactEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its investor.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.ContactEventInput) {
	idx := d.shardIndex(event.InvestorID)
	d.workers[idx] <- event
	metrics.OutreachQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple events preserving per-investor ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.ContactEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps an investor ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(investorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(investorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ContactEventInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.OutreachQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("investor_id", event.InvestorID).
					Int("worker_id", id).
					Msg("contact event processing failed")
			}
		}
	}
}
