// Package snapshot encodes an order aggregate as a self-contained JSON document
// and decodes it back through the domain restore constructors.
//
// The SQLite store keeps one document per order and the Redis cache stores the
// same bytes, so both agree on the format.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"
)

// Version is written into every document. Unmarshal rejects other versions.
const Version = 1

// Document is the wire form of an order.
type Document struct {
	Version   int       `json:"v"`
	ID        string    `json:"id"`
	Building  string    `json:"building"`
	Room      string    `json:"room"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Pancakes  []Pancake `json:"pancakes"`
}

// Pancake is the wire form of a pancake.
type Pancake struct {
	ID          string       `json:"id"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is the wire form of an ingredient.
type Ingredient struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// FromOrder builds the document of o.
func FromOrder(o *order.Order) Document {
	pancakes := o.Pancakes()
	doc := Document{
		Version:   Version,
		ID:        o.ID().String(),
		Building:  o.Address().Building(),
		Room:      o.Address().Room(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Pancakes:  make([]Pancake, 0, len(pancakes)),
	}

	for _, p := range pancakes {
		ingredients := p.Ingredients()
		wire := Pancake{
			ID:          p.ID().String(),
			Ingredients: make([]Ingredient, 0, len(ingredients)),
		}
		for _, ing := range ingredients {
			wire.Ingredients = append(wire.Ingredients, Ingredient{
				Name:     ing.Name(),
				Category: ing.Category().String(),
			})
		}
		doc.Pancakes = append(doc.Pancakes, wire)
	}

	return doc
}

// ToOrder restores the aggregate. Every invariant is checked again.
func (d Document) ToOrder() (*order.Order, error) {
	if d.Version != Version {
		return nil, errs.NewValueIsInvalidErrorWithCause("snapshot",
			fmt.Errorf("unsupported snapshot version %d", d.Version))
	}

	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewDeliveryAddress(d.Building, d.Room)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(d.Status)
	if err != nil {
		return nil, err
	}

	pancakes := make([]pancake.Pancake, 0, len(d.Pancakes))
	for _, wire := range d.Pancakes {
		p, pErr := wire.toPancake()
		if pErr != nil {
			return nil, pErr
		}
		pancakes = append(pancakes, p)
	}

	return order.RestoreOrder(id, address, pancakes, status, d.CreatedAt, d.UpdatedAt)
}

func (p Pancake) toPancake() (pancake.Pancake, error) {
	id, err := kernel.UUIDFromString(p.ID)
	if err != nil {
		return pancake.Pancake{}, err
	}

	ingredients := make([]pancake.Ingredient, 0, len(p.Ingredients))
	for _, wire := range p.Ingredients {
		category, cErr := pancake.ParseCategory(wire.Category)
		if cErr != nil {
			return pancake.Pancake{}, cErr
		}
		ing, iErr := pancake.NewIngredient(wire.Name, category)
		if iErr != nil {
			return pancake.Pancake{}, iErr
		}
		ingredients = append(ingredients, ing)
	}

	return pancake.RestorePancake(id, ingredients)
}

// Marshal encodes o as JSON.
func Marshal(o *order.Order) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(FromOrder(o))
	if err != nil {
		return nil, fmt.Errorf("failed to encode order %s: %w", o.ID(), err)
	}
	return data, nil
}

// Unmarshal decodes a document produced by Marshal.
func Unmarshal(data []byte) (*order.Order, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("snapshot", err)
	}
	return doc.ToOrder()
}
