package queries

import (
	"context"
)

// GetOrderQueryHandler loads one order from the store.
type GetOrderQueryHandler struct {
	repo OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(repo OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle returns the snapshot of the requested order, or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
