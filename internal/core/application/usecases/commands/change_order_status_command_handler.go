package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves an order one step through its workflow.
// The allowed steps come from the order state machine; the handler adds no rules
// of its own and never reinterprets the domain error.
type ChangeOrderStatusCommandHandler struct {
	repo OrderStore
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(repo OrderStore) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		repo: repo,
	}
}

// Handle loads the order, applies the transition and saves the new revision.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	updated, err := current.Apply(cmd.Transition())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
