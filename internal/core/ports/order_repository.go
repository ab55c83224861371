// Package ports defines the contracts between the pancake lab core and its
// infrastructure: the order store and the event publisher.
// These interfaces establish the dependency inversion boundary, so the
// application layer never imports an adapter.
package ports

import (
	"context"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Implementations must be safe for concurrent use without external locking:
// the coordinator serializes writers, but its readers overlap with each other.
// Infrastructure failures are reported as errs.UnavailableError so callers can
// tell them apart from domain failures.
type OrderRepository interface {
	// Save inserts or replaces the order with the same identifier, including
	// its pancakes and ingredients.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindActive retrieves every order whose status is active
	// (Created, Completed, Preparing or ReadyForDelivery), oldest first.
	FindActive(ctx context.Context) ([]*order.Order, error)

	// FindByStatus retrieves every order with exactly the given status, oldest first.
	//
	// Example:
	//   ready, err := repo.FindByStatus(ctx, order.ReadyForDelivery)
	//   if err != nil {
	//       return fmt.Errorf("failed to list orders ready for delivery: %w", err)
	//   }
	FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the order with the given identifier.
	// Returns true if an order was removed and false if there was none.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
