package commands_test

import (
	"context"
	"testing"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	addr, err := kernel.NewDeliveryAddress("BuildingA", "101")
	require.NoError(t, err)
	o, err := order.NewOrder(addr)
	require.NoError(t, err)
	return o
}

// newOrderWithPancake returns a Created order holding one pancake with the given ingredients.
func newOrderWithPancake(t *testing.T, ingredients ...pancake.Ingredient) (*order.Order, kernel.UUID) {
	t.Helper()
	p, err := pancake.RestorePancake(kernel.NewUUID(), ingredients)
	require.NoError(t, err)
	o, err := newTestOrder(t).AddPancake(p)
	require.NoError(t, err)
	return o, p.ID()
}

func mustIngredient(t *testing.T, name string, category pancake.Category) pancake.Ingredient {
	t.Helper()
	ing, err := pancake.NewIngredient(name, category)
	require.NoError(t, err)
	return ing
}

func savedOrder(fn func(*order.Order) bool) any {
	return mock.MatchedBy(fn)
}
