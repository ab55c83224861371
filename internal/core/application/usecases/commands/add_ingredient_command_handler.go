package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/services"
)

// AddIngredientCommandHandler adds an ingredient to a pancake inside an order.
// The pancake is located and replaced by services.PancakeEditor.
type AddIngredientCommandHandler struct {
	repo   OrderStore
	editor services.PancakeEditor
}

// NewAddIngredientCommandHandler creates a handler for adding ingredients.
func NewAddIngredientCommandHandler(repo OrderStore) AddIngredientCommandHandler {
	return AddIngredientCommandHandler{
		repo:   repo,
		editor: services.NewPancakeEditor(),
	}
}

// Handle loads the order, adds the ingredient to the pancake and saves the new revision.
//
// Returns:
//   - *order.Order: the saved revision
//   - error: errs.ObjectNotFoundError for an unknown order or pancake, an
//     InvalidArgument error for an incompatible ingredient, or an IllegalState
//     error when the order is past Created
func (h *AddIngredientCommandHandler) Handle(ctx context.Context, cmd AddIngredientCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	updated, err := h.editor.AddIngredient(current, cmd.PancakeID(), cmd.Ingredient())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
