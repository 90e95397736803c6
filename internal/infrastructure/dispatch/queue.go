package dispatch

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/catalog"
)

// Submitter performs one external catalog submission for one product.
type Submitter interface {
	Submit(ctx context.Context, product *catalog.Product) error
}

// Config holds dispatch queue configuration.
type Config struct {
	// BatchSize is the maximum number of submissions per tick.
	BatchSize int
	// Interval is the delay between ticks.
	Interval time.Duration
}

// DefaultConfig returns the default rate limit of 2 submissions per second,
// matching the external catalog's REST rate limit.
func DefaultConfig() Config {
	return Config{
		BatchSize: 2,
		Interval:  time.Second,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidConfig
	}
	if c.Interval <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Queue is an ordered product queue drained by a self-re-arming timer that
// submits at most BatchSize products per Interval. It is process-long-lived:
// items accumulate across ingestion runs and stay queued until drained.
//
// The queue has two states: idle (no timer armed) and draining. Within one
// tick submissions run sequentially, each awaited before the next, so peak
// outbound concurrency is one even though the rate limit allows BatchSize
// per window.
type Queue struct {
	config    Config
	submitter Submitter
	logger    *zap.Logger

	mu       sync.Mutex
	items    []*catalog.Product
	timer    *time.Timer
	draining bool
	// gen invalidates in-flight ticks across Stop/StartDraining so a stale
	// tick can never re-arm a second timer.
	gen uint64
}

// NewQueue creates a new dispatch queue.
func NewQueue(config Config, submitter Submitter, logger *zap.Logger) (*Queue, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Queue{
		config:    config,
		submitter: submitter,
		logger:    logger,
	}, nil
}

// EnqueueAll appends each product to the tail of the queue. Safe to call
// while draining.
func (q *Queue) EnqueueAll(products map[string]*catalog.Product) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, product := range products {
		q.items = append(q.items, product)
	}
}

// StartDraining arms the drain timer. It is a no-op when a drain cycle is
// already scheduled, so repeated triggers never produce overlapping timers.
func (q *Queue) StartDraining() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.draining {
		return
	}
	q.draining = true
	q.gen++
	gen := q.gen
	q.timer = time.AfterFunc(q.config.Interval, func() { q.tick(gen) })

	q.logger.Debug("Dispatch queue draining",
		zap.Int("queued", len(q.items)),
		zap.Int("batch_size", q.config.BatchSize),
		zap.Duration("interval", q.config.Interval),
	)
}

// Stop cancels any armed timer and returns the queue to idle. Queued items
// are kept; a later StartDraining picks up where Stop left off.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.gen++
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.draining = false
}

// Len returns the number of queued products.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Draining reports whether a drain cycle is currently armed.
func (q *Queue) Draining() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.draining
}

// tick processes up to BatchSize queued products, then either re-arms the
// timer or, if the queue emptied, transitions back to idle without waiting
// out the remaining slots.
func (q *Queue) tick(gen uint64) {
	for i := 0; i < q.config.BatchSize; i++ {
		product, ok := q.dequeue(gen)
		if !ok {
			return
		}
		q.submit(product)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.gen != gen {
		return
	}
	q.timer = time.AfterFunc(q.config.Interval, func() { q.tick(gen) })
}

// dequeue pops the head of the queue. When the queue is empty it disarms the
// timer and flips the state back to idle.
func (q *Queue) dequeue(gen uint64) (*catalog.Product, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.gen != gen {
		return nil, false
	}
	if len(q.items) == 0 {
		q.draining = false
		q.timer = nil
		return nil, false
	}

	product := q.items[0]
	q.items = q.items[1:]
	return product, true
}

// submit performs one awaited submission. A failed submission is logged and
// the product is considered consumed; there is no retry.
func (q *Queue) submit(product *catalog.Product) {
	if err := q.submitter.Submit(context.Background(), product); err != nil {
		q.logger.Error("Product submission failed",
			zap.String("handle", product.Handle),
			zap.String("title", product.Title),
			zap.Error(err),
		)
		return
	}

	q.logger.Info("Product submitted",
		zap.String("handle", product.Handle),
		zap.String("title", product.Title),
	)
}
