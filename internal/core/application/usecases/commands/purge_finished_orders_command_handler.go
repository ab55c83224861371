package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
)

// PurgeFinishedOrdersCommandHandler deletes terminal orders past their retention.
// It is the only writer that removes orders from the store.
type PurgeFinishedOrdersCommandHandler struct {
	repo FinishedOrderStore
}

// NewPurgeFinishedOrdersCommandHandler creates a handler for the purge.
func NewPurgeFinishedOrdersCommandHandler(repo FinishedOrderStore) PurgeFinishedOrdersCommandHandler {
	return PurgeFinishedOrdersCommandHandler{
		repo: repo,
	}
}

// Handle deletes every Delivered or Cancelled order last updated before the
// command's cutoff and returns the removed orders.
//
// Orders deleted before a failure stay deleted; the error is returned together
// with the orders removed so far.
func (h *PurgeFinishedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeFinishedOrdersCommand,
) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var purged []*order.Order
	for _, status := range []order.Status{order.Delivered, order.Cancelled} {
		finished, err := h.repo.FindByStatus(ctx, status)
		if err != nil {
			return purged, err
		}

		for _, o := range finished {
			if !o.UpdatedAt().Before(cmd.Cutoff()) {
				continue
			}

			removed, err := h.repo.Delete(ctx, o.ID())
			if err != nil {
				return purged, err
			}
			if removed {
				purged = append(purged, o)
			}
		}
	}

	return purged, nil
}
