package orderrepo_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"pancakelab/internal/adapters/out/sqlite/orderrepo"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRepository(t *testing.T) (*orderrepo.SQLiteOrderRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.db")
	repo, err := orderrepo.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, path
}

func orderWithPancake(t *testing.T) *order.Order {
	t.Helper()
	addr, err := kernel.NewDeliveryAddress("BuildingA", "101")
	require.NoError(t, err)
	o, err := order.NewOrder(addr)
	require.NoError(t, err)

	flour, err := pancake.NewIngredient("Flour", pancake.Flour)
	require.NoError(t, err)
	egg, err := pancake.NewIngredient("Egg", pancake.Egg)
	require.NoError(t, err)
	p, err := pancake.RestorePancake(kernel.NewUUID(), []pancake.Ingredient{flour, egg})
	require.NoError(t, err)

	o, err = o.AddPancake(p)
	require.NoError(t, err)
	return o
}

func restoredOrder(t *testing.T, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()
	addr, err := kernel.NewDeliveryAddress("BuildingB", "7")
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), addr, nil, status, createdAt, createdAt)
	require.NoError(t, err)
	return o
}

func TestSQLiteOrderRepository_SaveAndGet(t *testing.T) {
	t.Run("should round trip an order with pancakes", func(t *testing.T) {
		// Given
		repo, _ := openRepository(t)
		original := orderWithPancake(t)

		// When
		require.NoError(t, repo.Save(t.Context(), original))
		got, err := repo.Get(t.Context(), original.ID())

		// Then
		require.NoError(t, err)
		assert.Equal(t, original.ID(), got.ID())
		assert.Equal(t, original.String(), got.String())
		assert.True(t, original.UpdatedAt().Equal(got.UpdatedAt()))
		require.Len(t, got.Pancakes(), 1)
		assert.True(t, got.Pancakes()[0].IsValid())
	})

	t.Run("should overwrite the previous revision", func(t *testing.T) {
		// Given
		repo, _ := openRepository(t)
		original := orderWithPancake(t)
		require.NoError(t, repo.Save(t.Context(), original))
		completed, err := original.Complete()
		require.NoError(t, err)

		// When
		require.NoError(t, repo.Save(t.Context(), completed))

		// Then
		got, err := repo.Get(t.Context(), original.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Completed, got.Status())
		assert.True(t, original.CreatedAt().Equal(got.CreatedAt()))
	})

	t.Run("should keep orders after reopening the file", func(t *testing.T) {
		// Given
		repo, path := openRepository(t)
		original := orderWithPancake(t)
		require.NoError(t, repo.Save(t.Context(), original))
		require.NoError(t, repo.Close())

		// When
		reopened, err := orderrepo.Open(path)
		require.NoError(t, err)
		defer reopened.Close()
		exists, err := reopened.Exists(t.Context(), original.ID())

		// Then
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		// Given
		repo, _ := openRepository(t)

		// When
		_, err := repo.Get(t.Context(), kernel.NewUUID())

		// Then
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestSQLiteOrderRepository_Find(t *testing.T) {
	t.Run("should filter by status and sort oldest first", func(t *testing.T) {
		// Given
		repo, _ := openRepository(t)
		now := time.Now()
		newest := restoredOrder(t, order.Created, now)
		oldest := restoredOrder(t, order.ReadyForDelivery, now.Add(-time.Hour))
		cancelled := restoredOrder(t, order.Cancelled, now.Add(-2*time.Hour))
		for _, o := range []*order.Order{newest, cancelled, oldest} {
			require.NoError(t, repo.Save(t.Context(), o))
		}

		// When
		active, err := repo.FindActive(t.Context())
		require.NoError(t, err)
		finished, err := repo.FindByStatus(t.Context(), order.Cancelled)
		require.NoError(t, err)
		delivered, err := repo.FindByStatus(t.Context(), order.Delivered)
		require.NoError(t, err)

		// Then
		require.Len(t, active, 2)
		assert.Equal(t, oldest.ID(), active[0].ID())
		assert.Equal(t, newest.ID(), active[1].ID())
		require.Len(t, finished, 1)
		assert.Equal(t, cancelled.ID(), finished[0].ID())
		assert.NotNil(t, delivered)
		assert.Empty(t, delivered)
	})
}

func TestSQLiteOrderRepository_Delete(t *testing.T) {
	t.Run("should report whether a row was removed", func(t *testing.T) {
		// Given
		repo, _ := openRepository(t)
		o := restoredOrder(t, order.Delivered, time.Now())
		require.NoError(t, repo.Save(t.Context(), o))

		// When
		removed, err := repo.Delete(t.Context(), o.ID())
		require.NoError(t, err)
		removedAgain, err := repo.Delete(t.Context(), o.ID())
		require.NoError(t, err)

		// Then
		assert.True(t, removed)
		assert.False(t, removedAgain)
	})
}

func TestSQLiteOrderRepository_ConcurrentWrites(t *testing.T) {
	t.Run("should serialize concurrent saves", func(t *testing.T) {
		// Given
		const writers = 20
		repo, _ := openRepository(t)
		orders := make([]*order.Order, writers)
		for i := range orders {
			orders[i] = orderWithPancake(t)
		}

		// When
		var wg sync.WaitGroup
		errCh := make(chan error, writers)
		for _, o := range orders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errCh <- repo.Save(t.Context(), o)
			}()
		}
		wg.Wait()
		close(errCh)

		// Then
		for err := range errCh {
			require.NoError(t, err)
		}
		active, err := repo.FindActive(t.Context())
		require.NoError(t, err)
		assert.Len(t, active, writers)
	})
}
