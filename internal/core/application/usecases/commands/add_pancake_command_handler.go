package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
)

// AddPancakeCommandHandler adds an empty pancake to an order in Created status.
type AddPancakeCommandHandler struct {
	repo OrderStore
}

// NewAddPancakeCommandHandler creates a handler for adding pancakes.
func NewAddPancakeCommandHandler(repo OrderStore) AddPancakeCommandHandler {
	return AddPancakeCommandHandler{
		repo: repo,
	}
}

// Handle loads the order, appends the pancake and saves the new revision.
// Returns errs.ObjectNotFoundError for an unknown order and an IllegalState
// error when the order is past Created.
func (h *AddPancakeCommandHandler) Handle(ctx context.Context, cmd AddPancakeCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	p, err := pancake.NewPancake(cmd.PancakeID())
	if err != nil {
		return nil, err
	}

	updated, err := current.AddPancake(p)
	if err != nil {
		return nil, err
	}

	if err = h.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
