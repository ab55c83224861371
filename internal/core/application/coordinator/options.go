package coordinator

import (
	"context"
	"log/slog"
	"time"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/ports"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLock replaces the default GlobalLock.
func WithLock(lock Lock) Option {
	return func(c *Coordinator) {
		if lock != nil {
			c.lock = lock
		}
	}
}

// WithEventPublisher sets where order events are sent after each successful write.
// Without it events are dropped.
func WithEventPublisher(publisher ports.OrderEventPublisher) Option {
	return func(c *Coordinator) {
		if publisher != nil {
			c.publisher = publisher
		}
	}
}

// DefaultPublishTimeout bounds the delivery of a single event.
const DefaultPublishTimeout = 5 * time.Second

// WithPublishTimeout bounds how long a write waits for each of its events to be
// delivered. A delivery that runs out of time is logged and dropped; the write
// itself still succeeds.
func WithPublishTimeout(timeout time.Duration) Option {
	return func(c *Coordinator) {
		if timeout > 0 {
			c.publishTimeout = timeout
		}
	}
}

// WithLogger sets the logger. Without it slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, order.Event) error { return nil }
