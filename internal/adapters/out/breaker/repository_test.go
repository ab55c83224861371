package breaker_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"pancakelab/internal/adapters/out/breaker"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/pkg/errs"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newRepository(next *MockOrderRepository, timeout time.Duration) *breaker.OrderRepository {
	return breaker.NewOrderRepository(next, breaker.Settings{
		Name:        "orders",
		MaxFailures: 2,
		Timeout:     timeout,
	}, slog.New(slog.DiscardHandler))
}

var errConnectionRefused = errs.NewUnavailableErrorWithCause("postgres", errors.New("connection refused"))

func TestOrderRepository_Breaker(t *testing.T) {
	t.Run("should pass results through while closed", func(t *testing.T) {
		// Given
		next := new(MockOrderRepository)
		next.On("FindActive", mock.Anything).Return([]*order.Order{}, nil).Once()
		next.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Once()
		repo := newRepository(next, time.Minute)

		// When
		active, err := repo.FindActive(t.Context())
		require.NoError(t, err)
		exists, err := repo.Exists(t.Context(), kernel.NewUUID())
		require.NoError(t, err)

		// Then
		assert.Empty(t, active)
		assert.True(t, exists)
		assert.Equal(t, gobreaker.StateClosed, repo.State())
		require.NoError(t, repo.HealthCheck(t.Context()))
		next.AssertExpectations(t)
	})

	t.Run("should open after consecutive unavailable failures and fail fast", func(t *testing.T) {
		// Given
		next := new(MockOrderRepository)
		next.On("Get", mock.Anything, mock.Anything).Return(nil, errConnectionRefused).Twice()
		repo := newRepository(next, time.Minute)

		// When
		_, first := repo.Get(t.Context(), kernel.NewUUID())
		_, second := repo.Get(t.Context(), kernel.NewUUID())
		_, third := repo.Get(t.Context(), kernel.NewUUID())

		// Then
		require.ErrorIs(t, first, errs.ErrUnavailable)
		require.ErrorIs(t, second, errs.ErrUnavailable)
		require.ErrorIs(t, third, errs.ErrUnavailable)
		var unavailable *errs.UnavailableError
		require.ErrorAs(t, third, &unavailable)
		assert.ErrorIs(t, unavailable.Cause, gobreaker.ErrOpenState)
		assert.Equal(t, gobreaker.StateOpen, repo.State())
		require.Error(t, repo.HealthCheck(t.Context()))
		next.AssertNumberOfCalls(t, "Get", 2)
	})

	t.Run("should not count domain failures", func(t *testing.T) {
		// Given
		next := new(MockOrderRepository)
		id := kernel.NewUUID()
		next.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String()))
		next.On("Delete", mock.Anything, id).Return(false, nil)
		repo := newRepository(next, time.Minute)

		// When
		for range 5 {
			_, err := repo.Get(t.Context(), id)
			require.ErrorIs(t, err, errs.ErrObjectNotFound)
		}
		removed, err := repo.Delete(t.Context(), id)

		// Then
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, gobreaker.StateClosed, repo.State())
	})

	t.Run("should close again after a successful half-open call", func(t *testing.T) {
		// Given
		next := new(MockOrderRepository)
		next.On("Save", mock.Anything, mock.Anything).Return(errConnectionRefused).Twice()
		repo := newRepository(next, 20*time.Millisecond)
		require.Error(t, repo.Save(t.Context(), nil))
		require.Error(t, repo.Save(t.Context(), nil))
		require.Equal(t, gobreaker.StateOpen, repo.State())

		next.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		// When
		require.Eventually(t, func() bool {
			return repo.State() == gobreaker.StateHalfOpen
		}, time.Second, 5*time.Millisecond)
		err := repo.Save(t.Context(), nil)

		// Then
		require.NoError(t, err)
		assert.Equal(t, gobreaker.StateClosed, repo.State())
	})

	t.Run("should reset the failure streak on a domain error", func(t *testing.T) {
		// Given
		next := new(MockOrderRepository)
		id := kernel.NewUUID()
		next.On("Get", mock.Anything, id).Return(nil, errConnectionRefused).Once()
		next.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
		next.On("Get", mock.Anything, id).Return(nil, errConnectionRefused).Once()
		repo := newRepository(next, time.Minute)

		// When
		_, first := repo.Get(t.Context(), id)
		_, second := repo.Get(t.Context(), id)
		_, third := repo.Get(t.Context(), id)

		// Then
		require.ErrorIs(t, first, errs.ErrUnavailable)
		require.ErrorIs(t, second, errs.ErrObjectNotFound)
		require.ErrorIs(t, third, errs.ErrUnavailable)
		assert.Equal(t, gobreaker.StateClosed, repo.State())
		assert.Equal(t, uint32(1), repo.Counts().ConsecutiveFailures)
		next.AssertExpectations(t)
	})

	t.Run("should count status queries", func(t *testing.T) {
		// Given
		next := new(MockOrderRepository)
		next.On("FindByStatus", mock.Anything, order.Created).Return(nil, errConnectionRefused)
		repo := newRepository(next, time.Minute)

		// When
		_, _ = repo.FindByStatus(t.Context(), order.Created)
		_, _ = repo.FindByStatus(t.Context(), order.Created)

		// Then
		assert.Equal(t, gobreaker.StateOpen, repo.State())
	})
}
