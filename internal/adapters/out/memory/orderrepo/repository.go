package orderrepo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/pkg/errs"
)

// InMemoryOrderRepository implements ports.OrderRepository over a map keyed by order id.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

// NewInMemoryOrderRepository creates an empty repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Save inserts the order or replaces the stored order with the same id.
func (r *InMemoryOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return errs.NewUnavailableErrorWithCause("memory store", err)
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[aggregate.ID()] = aggregate
	return nil
}

// Get returns the order with the given id or an errs.ObjectNotFoundError.
func (r *InMemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewUnavailableErrorWithCause("memory store", err)
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// FindActive returns every active order, oldest first.
func (r *InMemoryOrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	return r.filter(ctx, (*order.Order).IsActive)
}

// FindByStatus returns every order in status, oldest first.
func (r *InMemoryOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.filter(ctx, func(o *order.Order) bool { return o.Status() == status })
}

// Exists reports whether an order with the given id is stored.
func (r *InMemoryOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errs.NewUnavailableErrorWithCause("memory store", err)
	}
	if err := id.Validate(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.orders[id]
	return ok, nil
}

// Delete removes the order with the given id and reports whether it was there.
func (r *InMemoryOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errs.NewUnavailableErrorWithCause("memory store", err)
	}
	if err := id.Validate(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

// Clear removes every order.
func (r *InMemoryOrderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.orders)
}

// Size returns the number of stored orders.
func (r *InMemoryOrderRepository) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}

func (r *InMemoryOrderRepository) filter(ctx context.Context, keep func(*order.Order) bool) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewUnavailableErrorWithCause("memory store", err)
	}

	r.mu.RLock()
	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if keep(o) {
			result = append(result, o)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b *order.Order) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})

	return result, nil
}
