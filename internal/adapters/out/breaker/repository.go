// Package breaker guards an order repository with a circuit breaker.
//
// Only infrastructure failures (errs.KindUnavailable) count against the
// breaker; NotFound and validation errors are ordinary answers from a healthy
// store. While the breaker is open every call fails fast with an
// errs.UnavailableError wrapping gobreaker.ErrOpenState.
package breaker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/ports"
	"pancakelab/internal/pkg/errs"

	"github.com/sony/gobreaker/v2"
)

// Settings configures the breaker.
type Settings struct {
	// Name identifies the guarded store in logs and errors.
	Name string

	// MaxFailures is the number of consecutive Unavailable failures that opens the breaker.
	MaxFailures int

	// Timeout is how long the breaker stays open before letting a trial call through.
	Timeout time.Duration

	// HalfOpenRequests is how many trial calls are allowed while half-open. Zero means one.
	HalfOpenRequests uint32
}

// OrderRepository implements ports.OrderRepository around another repository.
type OrderRepository struct {
	next    ports.OrderRepository
	breaker *gobreaker.TwoStepCircuitBreaker[struct{}]
	name    string
}

// NewOrderRepository wraps next with a breaker built from settings.
func NewOrderRepository(next ports.OrderRepository, settings Settings, logger *slog.Logger) *OrderRepository {
	maxFailures := settings.MaxFailures
	if maxFailures <= 0 {
		maxFailures = 1
	}

	cb := gobreaker.NewTwoStepCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.HalfOpenRequests,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &OrderRepository{
		next:    next,
		breaker: cb,
		name:    settings.Name,
	}
}

func (r *OrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	_, err := call(r, func() (struct{}, error) {
		return struct{}{}, r.next.Save(ctx, aggregate)
	})
	return err
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return call(r, func() (*order.Order, error) {
		return r.next.Get(ctx, id)
	})
}

func (r *OrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	return call(r, func() ([]*order.Order, error) {
		return r.next.FindActive(ctx)
	})
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return call(r, func() ([]*order.Order, error) {
		return r.next.FindByStatus(ctx, status)
	})
}

func (r *OrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	return call(r, func() (bool, error) {
		return r.next.Exists(ctx, id)
	})
}

func (r *OrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	return call(r, func() (bool, error) {
		return r.next.Delete(ctx, id)
	})
}

// State returns the current breaker state.
func (r *OrderRepository) State() gobreaker.State {
	return r.breaker.State()
}

// Counts returns the breaker's request counters for the current generation.
func (r *OrderRepository) Counts() gobreaker.Counts {
	return r.breaker.Counts()
}

// HealthCheck reports the store as failing while the breaker is open.
// No call is made to the store.
func (r *OrderRepository) HealthCheck(_ context.Context) error {
	switch state := r.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", r.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", r.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", r.name, state)
	}
}

// countsAsSuccess treats every answer except an infrastructure failure as a
// healthy store.
func countsAsSuccess(err error) bool {
	return errs.KindOf(err) != errs.KindUnavailable
}

func call[T any](r *OrderRepository, fn func() (T, error)) (T, error) {
	var zero T

	done, err := r.breaker.Allow()
	if err != nil {
		return zero, errs.NewUnavailableErrorWithCause(r.name, err)
	}

	result, err := fn()
	done(err)

	return result, err
}
