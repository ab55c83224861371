package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
)

// RemovePancakeCommandHandler removes a pancake from an order in Created status.
type RemovePancakeCommandHandler struct {
	repo OrderStore
}

// NewRemovePancakeCommandHandler creates a handler for removing pancakes.
func NewRemovePancakeCommandHandler(repo OrderStore) RemovePancakeCommandHandler {
	return RemovePancakeCommandHandler{
		repo: repo,
	}
}

// Handle loads the order, removes the pancake and saves the new revision.
func (h *RemovePancakeCommandHandler) Handle(ctx context.Context, cmd RemovePancakeCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	updated, err := current.RemovePancake(cmd.PancakeID())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
