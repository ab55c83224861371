// Package cachedrepo decorates an order repository with a Redis read-through
// cache of order snapshots.
//
// Only Get is served from the cache. Save and Delete write to the underlying
// store first and then evict the key, so a reader never sees a revision older
// than the last acknowledged write for longer than one round trip. Redis
// failures are logged and bypassed: the cache never turns a working store
// into an unavailable one.
package cachedrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pancakelab/internal/adapters/out/snapshot"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pancakelab:order:"

// CachedOrderRepository implements ports.OrderRepository over another repository.
type CachedOrderRepository struct {
	next   ports.OrderRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedOrderRepository wraps next with a cache stored in client.
// Entries expire after ttl; a ttl of zero keeps them until evicted.
func NewCachedOrderRepository(
	next ports.OrderRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedOrderRepository {
	return &CachedOrderRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "order-cache"),
	}
}

// Save stores the order in the underlying repository and evicts its cache entry.
func (r *CachedOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := r.next.Save(ctx, aggregate); err != nil {
		return err
	}

	r.evict(ctx, aggregate.ID())
	return nil
}

// Get returns the cached snapshot when present, otherwise loads the order and caches it.
func (r *CachedOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := r.lookup(ctx, id); ok {
		return cached, nil
	}

	o, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, o)
	return o, nil
}

func (r *CachedOrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	return r.next.FindActive(ctx)
}

func (r *CachedOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.next.FindByStatus(ctx, status)
}

func (r *CachedOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	return r.next.Exists(ctx, id)
}

// Delete removes the order from the underlying repository and evicts its cache entry.
func (r *CachedOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	removed, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	r.evict(ctx, id)
	return removed, nil
}

func (r *CachedOrderRepository) lookup(ctx context.Context, id kernel.UUID) (*order.Order, bool) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		r.logger.WarnContext(ctx, "order cache read failed", "order_id", id.String(), "error", err)
		return nil, false
	}

	o, err := snapshot.Unmarshal(data)
	if err != nil {
		r.logger.WarnContext(ctx, "dropping unreadable cache entry", "order_id", id.String(), "error", err)
		r.evict(ctx, id)
		return nil, false
	}

	return o, true
}

func (r *CachedOrderRepository) store(ctx context.Context, o *order.Order) {
	data, err := snapshot.Marshal(o)
	if err != nil {
		r.logger.WarnContext(ctx, "order cache encode failed", "order_id", o.ID().String(), "error", err)
		return
	}

	if err = r.client.Set(ctx, key(o.ID()), data, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "order cache write failed", "order_id", o.ID().String(), "error", err)
	}
}

func (r *CachedOrderRepository) evict(ctx context.Context, id kernel.UUID) {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		r.logger.WarnContext(ctx, "order cache eviction failed", "order_id", id.String(), "error", err)
	}
}

func key(id kernel.UUID) string {
	return fmt.Sprintf("%s%s", keyPrefix, id)
}
