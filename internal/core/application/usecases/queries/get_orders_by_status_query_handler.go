package queries

import (
	"context"
)

// GetOrdersByStatusQueryHandler lists orders with a given status, oldest first.
type GetOrdersByStatusQueryHandler struct {
	repo StatusOrderLister
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
func NewGetOrdersByStatusQueryHandler(repo StatusOrderLister) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{repo: repo}
}

// Handle returns snapshots of every order in the requested status.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.FindByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return NewOrderResponses(orders), nil
}
