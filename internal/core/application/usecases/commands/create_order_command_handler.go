package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates an empty order in Created status and saves it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(repo)
//	cmd, _ := NewCreateOrderCommand("BuildingB", "12")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.ID() identifies the order in every later command
type CreateOrderCommandHandler struct {
	repo OrderSaver
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(repo OrderSaver) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo: repo,
	}
}

// Handle processes the order creation command and returns the saved order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.Address())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Save(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
