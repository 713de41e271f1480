package service

import (
	"context"

	"github.com/ajs-hub/placement-api/internal/events"
)

// MeteredPublisher counts events on their way to the wrapped publisher.
type MeteredPublisher struct {
	next    events.Publisher
	metrics *MetricsService
}

// NewMeteredPublisher wraps next; a nil next discards events after counting them.
func NewMeteredPublisher(next events.Publisher, metrics *MetricsService) *MeteredPublisher {
	return &MeteredPublisher{next: publisherOrDiscard(next), metrics: metrics}
}

// Publish implements events.Publisher.
func (p *MeteredPublisher) Publish(ctx context.Context, event events.Event) {
	p.metrics.RecordEventPublished(string(event.Type))
	p.next.Publish(ctx, event)
}
