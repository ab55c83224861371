package http_test

import (
	"context"

	"pancakelab/internal/core/application/usecases/queries"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"

	"github.com/stretchr/testify/mock"
)

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) CreateOrder(ctx context.Context, building, room string) (kernel.UUID, error) {
	args := m.Called(ctx, building, room)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

func (m *MockOrderService) AddPancake(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, orderID)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

func (m *MockOrderService) RemovePancake(ctx context.Context, orderID, pancakeID kernel.UUID) error {
	args := m.Called(ctx, orderID, pancakeID)
	return args.Error(0)
}

func (m *MockOrderService) AddIngredient(
	ctx context.Context,
	orderID, pancakeID kernel.UUID,
	name string,
	category pancake.Category,
) error {
	args := m.Called(ctx, orderID, pancakeID, name, category)
	return args.Error(0)
}

func (m *MockOrderService) RemoveIngredient(ctx context.Context, orderID, pancakeID kernel.UUID, name string) error {
	args := m.Called(ctx, orderID, pancakeID, name)
	return args.Error(0)
}

func (m *MockOrderService) CompleteOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderService) CancelOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderService) StartPreparing(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderService) MarkReadyForDelivery(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderService) DeliverOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	args := m.Called(ctx, orderID)
	resp, _ := args.Get(0).(queries.OrderResponse)
	return resp, args.Error(1)
}

func (m *MockOrderService) GetActiveOrders(ctx context.Context) ([]queries.OrderResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]queries.OrderResponse)
	return resp, args.Error(1)
}

func (m *MockOrderService) GetOrdersByStatus(ctx context.Context, status order.Status) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, status)
	resp, _ := args.Get(0).([]queries.OrderResponse)
	return resp, args.Error(1)
}
