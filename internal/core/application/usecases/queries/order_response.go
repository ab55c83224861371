package queries

import (
	"time"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
)

// OrderResponse is a presentation-agnostic snapshot of an order.
//
// Example:
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %d pancakes, %s\n", resp.DeliveryAddress, len(resp.Pancakes), resp.Status)
type OrderResponse struct {
	ID              kernel.UUID
	Building        string
	Room            string
	DeliveryAddress string
	Pancakes        []PancakeResponse
	Status          order.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
	IsActive        bool
	CanBeModified   bool
}

// PancakeResponse is a snapshot of one pancake in an order.
type PancakeResponse struct {
	ID          kernel.UUID
	Ingredients []IngredientResponse
	Description string
	IsValid     bool
}

// IngredientResponse is a snapshot of one ingredient.
type IngredientResponse struct {
	Name     string
	Category pancake.Category
}

// NewOrderResponse builds the snapshot of o.
func NewOrderResponse(o *order.Order) OrderResponse {
	pancakes := o.Pancakes()
	resp := OrderResponse{
		ID:              o.ID(),
		Building:        o.Address().Building(),
		Room:            o.Address().Room(),
		DeliveryAddress: o.DeliveryAddress(),
		Pancakes:        make([]PancakeResponse, 0, len(pancakes)),
		Status:          o.Status(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		IsActive:        o.IsActive(),
		CanBeModified:   o.CanBeModified(),
	}

	for _, p := range pancakes {
		ingredients := p.Ingredients()
		pr := PancakeResponse{
			ID:          p.ID(),
			Ingredients: make([]IngredientResponse, 0, len(ingredients)),
			Description: p.Description(),
			IsValid:     p.IsValid(),
		}
		for _, ing := range ingredients {
			pr.Ingredients = append(pr.Ingredients, IngredientResponse{
				Name:     ing.Name(),
				Category: ing.Category(),
			})
		}
		resp.Pancakes = append(resp.Pancakes, pr)
	}

	return resp
}

// NewOrderResponses builds snapshots of orders, keeping their order.
func NewOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
