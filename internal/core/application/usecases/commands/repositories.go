// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, load, a pure domain
// transition, and a single save.
package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
)

// Repository views used by command handlers. ports.OrderRepository satisfies
// all of them; handlers ask only for what they call, which keeps the test
// doubles small.
type (
	// OrderGetter loads an order by identifier.
	OrderGetter interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	}

	// OrderSaver persists an order revision.
	OrderSaver interface {
		Save(ctx context.Context, aggregate *order.Order) error
	}

	// OrderStore loads and saves orders.
	//
	// Example:
	//   o, err := store.Get(ctx, id)
	//   if err != nil {
	//       return nil, err
	//   }
	//   if o, err = o.Cancel(); err != nil {
	//       return nil, err
	//   }
	//   return o, store.Save(ctx, o)
	OrderStore interface {
		OrderGetter
		OrderSaver
	}

	// FinishedOrderStore lists orders by status and deletes them.
	FinishedOrderStore interface {
		FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
		Delete(ctx context.Context, id kernel.UUID) (bool, error)
	}
)
