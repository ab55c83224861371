package services

import (
	"fmt"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"
)

// PancakeEdit changes a single pancake and returns its new value.
type PancakeEdit func(pancake.Pancake) (pancake.Pancake, error)

// PancakeEditor applies pancake-level operations to pancakes that live inside an order.
//
// Workflow:
//   - Locate the pancake in the order (errs.ObjectNotFoundError when absent)
//   - Apply the edit to the pancake value
//   - Replace the pancake in the order by removing the old value and adding the new one
//
// Replacing goes through Order.RemovePancake and Order.AddPancake, so the order's
// own rules still hold: an order that is no longer Created rejects the change
// with an IllegalState error. The edited pancake moves to the end of the list.
//
// Example usage:
//
//	editor := services.NewPancakeEditor()
//	honey, _ := pancake.NewIngredient("Honey", pancake.SweetTopping)
//	updated, err := editor.AddIngredient(o, pancakeID, honey)
//	if err != nil {
//	    return err
//	}
type PancakeEditor struct{}

// NewPancakeEditor creates a new PancakeEditor instance.
func NewPancakeEditor() PancakeEditor {
	return PancakeEditor{}
}

// UpdatePancake locates the pancake identified by pancakeID, applies edit and
// returns the order revision holding the result.
//
// Parameters:
//   - o: The order owning the pancake
//   - pancakeID: The pancake to change
//   - edit: The pancake-level operation
//
// Returns:
//   - *order.Order: The new revision; o itself is unchanged
//   - error: errs.ObjectNotFoundError for an unknown pancake, or the error
//     returned by edit or by the order
func (e PancakeEditor) UpdatePancake(o *order.Order, pancakeID kernel.UUID, edit PancakeEdit) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := pancakeID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("pancake id", err)
	}

	current, ok := o.FindPancake(pancakeID)
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"pancake",
			pancakeID.String(),
			fmt.Errorf("order %s has no such pancake", o.ID()),
		)
	}

	updated, err := edit(current)
	if err != nil {
		return nil, err
	}

	without, err := o.RemovePancake(pancakeID)
	if err != nil {
		return nil, err
	}

	return without.AddPancake(updated)
}

// AddIngredient adds ingredient to the pancake identified by pancakeID.
func (e PancakeEditor) AddIngredient(
	o *order.Order,
	pancakeID kernel.UUID,
	ingredient pancake.Ingredient,
) (*order.Order, error) {
	return e.UpdatePancake(o, pancakeID, func(p pancake.Pancake) (pancake.Pancake, error) {
		return p.AddIngredient(ingredient)
	})
}

// RemoveIngredient removes the first ingredient named name from the pancake identified by pancakeID.
func (e PancakeEditor) RemoveIngredient(o *order.Order, pancakeID kernel.UUID, name string) (*order.Order, error) {
	return e.UpdatePancake(o, pancakeID, func(p pancake.Pancake) (pancake.Pancake, error) {
		return p.RemoveIngredient(name)
	})
}
