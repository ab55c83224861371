package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/services"
)

// RemoveIngredientCommandHandler removes an ingredient from a pancake inside an order.
type RemoveIngredientCommandHandler struct {
	repo   OrderStore
	editor services.PancakeEditor
}

// NewRemoveIngredientCommandHandler creates a handler for removing ingredients.
func NewRemoveIngredientCommandHandler(repo OrderStore) RemoveIngredientCommandHandler {
	return RemoveIngredientCommandHandler{
		repo:   repo,
		editor: services.NewPancakeEditor(),
	}
}

// Handle loads the order, removes the first matching ingredient and saves the new revision.
func (h *RemoveIngredientCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveIngredientCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	updated, err := h.editor.RemoveIngredient(current, cmd.PancakeID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
