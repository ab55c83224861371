package coordinator

import (
	"context"
	"time"

	"pancakelab/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

// writerWeight is the full weight of GlobalLock. A writer takes all of it, a
// reader takes one unit, so up to writerWeight readers may run together.
const writerWeight = 1 << 30

// Lock is the locking strategy of the Coordinator. Both methods block until the
// lock is held or ctx is done, and return the function that releases it.
type Lock interface {
	// Lock acquires exclusive access.
	Lock(ctx context.Context) (unlock func(), err error)

	// RLock acquires shared access.
	RLock(ctx context.Context) (unlock func(), err error)
}

// GlobalLock is a context-aware reader/writer lock over the whole order collection.
//
// Waiters are served in arrival order: once a writer is waiting, readers that
// arrive after it wait too.
type GlobalLock struct {
	sem *semaphore.Weighted
}

// NewGlobalLock creates an unlocked GlobalLock.
func NewGlobalLock() *GlobalLock {
	return &GlobalLock{sem: semaphore.NewWeighted(writerWeight)}
}

func (l *GlobalLock) Lock(ctx context.Context) (func(), error) {
	return l.acquire(ctx, writerWeight)
}

func (l *GlobalLock) RLock(ctx context.Context) (func(), error) {
	return l.acquire(ctx, 1)
}

func (l *GlobalLock) acquire(ctx context.Context, weight int64) (func(), error) {
	if err := l.sem.Acquire(ctx, weight); err != nil {
		return nil, errs.NewUnavailableErrorWithCause("order lock", err)
	}
	return func() { l.sem.Release(weight) }, nil
}

// TimeoutLock bounds how long a caller waits for another Lock.
type TimeoutLock struct {
	next    Lock
	timeout time.Duration
}

// NewTimeoutLock wraps next so that acquisition fails with errs.UnavailableError
// after timeout, even when the caller's context has no deadline.
func NewTimeoutLock(next Lock, timeout time.Duration) *TimeoutLock {
	return &TimeoutLock{next: next, timeout: timeout}
}

func (l *TimeoutLock) Lock(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return l.next.Lock(ctx)
}

func (l *TimeoutLock) RLock(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return l.next.RLock(ctx)
}

// NopLock never blocks. Use it only where operations cannot run concurrently.
type NopLock struct{}

func (NopLock) Lock(context.Context) (func(), error)  { return func() {}, nil }
func (NopLock) RLock(context.Context) (func(), error) { return func() {}, nil }
