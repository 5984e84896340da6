package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/SYD090303/GymFlow/internal/api/metrics"
	"github.com/SYD090303/GymFlow/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

type notification struct {
	title   string
	message string
}

// Dispatcher decouples notification writes from the request path. Entries
// are routed to a fixed set of workers using consistent hashing on the
// title, so entries from the same source keep their relative order.
type Dispatcher struct {
	workers []chan notification
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan notification, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// NotifyOwner enqueues a notification and returns immediately. It stands in
// front of the persistent service on the check-in path so a slow write never
// blocks a check-in.
func (d *Dispatcher) NotifyOwner(ctx context.Context, title, message string) error {
	d.workers[d.shardIndex(title)] <- notification{title: title, message: message}
	return nil
}

// shardIndex maps a title deterministically to a worker index.
func (d *Dispatcher) shardIndex(title string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.NotifyOwner(ctx, n.title, n.message); err != nil {
				d.log.Error().Err(err).
					Str("title", n.title).
					Int("worker_id", id).
					Msg("notification write failed")
				continue
			}
			metrics.NotificationsCreatedTotal.Inc()
		}
	}
}
