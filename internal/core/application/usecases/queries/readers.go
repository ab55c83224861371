// Package queries contains read-only operations over orders.
// Every query returns OrderResponse snapshots, which are plain values that
// share nothing with the aggregates they were built from.
package queries

import (
	"context"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
)

// Store views used by query handlers. ports.OrderRepository satisfies all of them.
type (
	// OrderReader loads a single order.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	}

	// ActiveOrderLister lists orders that have not reached a terminal status.
	ActiveOrderLister interface {
		FindActive(ctx context.Context) ([]*order.Order, error)
	}

	// StatusOrderLister lists orders with a given status.
	StatusOrderLister interface {
		FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
	}
)
