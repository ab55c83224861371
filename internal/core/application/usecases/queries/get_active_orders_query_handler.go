package queries

import (
	"context"
)

// GetActiveOrdersQueryHandler lists active orders, oldest first.
type GetActiveOrdersQueryHandler struct {
	repo ActiveOrderLister
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order listings.
func NewGetActiveOrdersQueryHandler(repo ActiveOrderLister) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{repo: repo}
}

// Handle returns snapshots of every active order. The result is never nil.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	return NewOrderResponses(orders), nil
}
