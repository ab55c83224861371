package coordinator_test

import (
	"context"
	"sync"
	"sync/atomic"

	"pancakelab/internal/adapters/out/memory/orderrepo"
	"pancakelab/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// recordingPublisher keeps every event it receives.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []order.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]order.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

// stalledPublisher never delivers; it waits for the context to end and
// remembers whether that context carried a deadline.
type stalledPublisher struct {
	calls       atomic.Int32
	hadDeadline atomic.Bool
}

func (p *stalledPublisher) Publish(ctx context.Context, _ order.Event) error {
	p.calls.Add(1)
	_, ok := ctx.Deadline()
	p.hadDeadline.Store(ok)
	<-ctx.Done()
	return ctx.Err()
}

// panickingRepository panics on the first Save and behaves normally afterwards.
type panickingRepository struct {
	*orderrepo.InMemoryOrderRepository
	panicked atomic.Bool
}

func (r *panickingRepository) Save(ctx context.Context, o *order.Order) error {
	if r.panicked.CompareAndSwap(false, true) {
		panic("disk on fire")
	}
	return r.InMemoryOrderRepository.Save(ctx, o)
}
