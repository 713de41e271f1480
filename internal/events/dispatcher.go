package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/pkg/jobs"
)

// delivery pairs an event with the one subscriber it is addressed to, so a
// retry never replays the event to subscribers that already handled it.
type delivery struct {
	subscriber Subscriber
	event      Event
}

// Dispatcher fans events out to subscribers on a background job queue.
type Dispatcher struct {
	queue  *jobs.Queue
	logger *zap.Logger

	mu          sync.RWMutex
	subscribers []Subscriber
}

// NewDispatcher builds a dispatcher whose queue uses the given sizing.
func NewDispatcher(cfg jobs.QueueConfig) *Dispatcher {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	d := &Dispatcher{logger: cfg.Logger}
	d.queue = jobs.NewQueue("events", d.handle, cfg)
	return d
}

// Subscribe registers a subscriber for every event published afterwards.
func (d *Dispatcher) Subscribe(subscribers ...Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, subscribers...)
}

// Start launches the workers.
func (d *Dispatcher) Start(ctx context.Context) {
	d.queue.Start(ctx)
}

// Stop drains queued deliveries and stops the workers.
func (d *Dispatcher) Stop() {
	d.queue.Stop()
}

// Publish enqueues one delivery per subscriber. Enqueue failures are logged
// and never reach the caller.
func (d *Dispatcher) Publish(_ context.Context, event Event) {
	d.mu.RLock()
	subscribers := append([]Subscriber(nil), d.subscribers...)
	d.mu.RUnlock()

	for _, sub := range subscribers {
		job := jobs.Job{
			ID:      uuid.NewString(),
			Type:    string(event.Type),
			Payload: delivery{subscriber: sub, event: event},
		}
		if err := d.queue.Enqueue(job); err != nil {
			d.logger.Warn("event dropped",
				zap.String("event", string(event.Type)),
				zap.String("subscriber", sub.Name()),
				zap.Error(err))
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, job jobs.Job) error {
	del, ok := job.Payload.(delivery)
	if !ok {
		return fmt.Errorf("unexpected payload %T", job.Payload)
	}
	if err := del.subscriber.Handle(ctx, del.event); err != nil {
		return fmt.Errorf("%s: %w", del.subscriber.Name(), err)
	}
	return nil
}
