package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/shopfront/storefront-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes reset notifications to a fixed set of workers using
// consistent hashing on the username, so deliveries for one account are
// ordered: a token issued later is never delivered before an earlier one.
type Dispatcher struct {
	workers []chan ports.ResetNotification
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ResetNotification, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ResetNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its account.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.ResetNotification) {
	d.workers[d.shardIndex(n.Username)] <- n
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ResetNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.mailer.SendPasswordReset(ctx, n); err != nil {
				// Log the failure without the token value.
				d.log.Error().Err(err).
					Str("username", n.Username).
					Int("worker_id", id).
					Msg("reset notification delivery failed")
			}
		}
	}
}
