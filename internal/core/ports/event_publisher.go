package ports

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order events to interested parties outside the
// process. Publish is called after the change has been saved; a failure is
// reported to the caller but never undoes the saved change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
