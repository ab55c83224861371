package pancake

import (
	"errors"
	"fmt"
	"strings"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

// ErrPancakeIsNotConstructed is returned when validating a zero-value Pancake.
var ErrPancakeIsNotConstructed = errors.New("Pancake must be created via NewPancake constructor")

// Pancake is an ordered collection of mutually compatible ingredients.
//
// Pancake is a value type. AddIngredient and RemoveIngredient build a new
// ingredient slice and return a new Pancake; the receiver keeps its contents,
// so a Pancake can be shared between goroutines without copying.
//
// Compatibility is checked when an ingredient is added and never re-checked,
// which means removing an ingredient cannot invalidate the remaining ones.
type Pancake struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	ingredients []Ingredient
	guard       guard.ConstructorGuard
}

// NewPancake creates an empty pancake with the given identifier.
//
// Returns:
//   - Pancake: an empty pancake
//   - error: kernel.ErrUUIDIsNotConstructed when id is the zero UUID
func NewPancake(id kernel.UUID) (Pancake, error) {
	if err := id.Validate(); err != nil {
		return Pancake{}, err
	}

	return Pancake{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestorePancake rebuilds a pancake from persisted state. Ingredients are added
// one by one through AddIngredient, so a stored combination that breaks the
// compatibility rules is rejected on load.
func RestorePancake(id kernel.UUID, ingredients []Ingredient) (Pancake, error) {
	p, err := NewPancake(id)
	if err != nil {
		return Pancake{}, err
	}

	for _, ing := range ingredients {
		if p, err = p.AddIngredient(ing); err != nil {
			return Pancake{}, err
		}
	}

	return p, nil
}

// Validate reports whether the pancake was created through NewPancake.
func (p Pancake) Validate() error {
	return p.guard.Validate(ErrPancakeIsNotConstructed)
}

// ID returns the pancake identifier.
func (p Pancake) ID() kernel.UUID {
	return p.id
}

// Ingredients returns a copy of the ingredients in insertion order.
func (p Pancake) Ingredients() []Ingredient {
	out := make([]Ingredient, len(p.ingredients))
	copy(out, p.ingredients)
	return out
}

// AddIngredient returns a new pancake with ingredient appended.
//
// Returns:
//   - Pancake: the new pancake
//   - error: errs.ValueIsRequiredError when ingredient was not constructed, or
//     errs.ValueIsInvalidError naming the first existing ingredient it conflicts with
//
// Example:
//
//	p, err = p.AddIngredient(flour)
//	if err != nil {
//	    // p is unchanged
//	}
func (p Pancake) AddIngredient(ingredient Ingredient) (Pancake, error) {
	if err := ingredient.Validate(); err != nil {
		return p, errs.NewValueIsRequiredErrorWithCause("ingredient", err)
	}

	for _, existing := range p.ingredients {
		if !ingredient.IsCompatibleWith(existing) {
			return p, errs.NewValueIsInvalidErrorWithCause(
				"ingredient",
				fmt.Errorf("ingredient '%s' is not compatible with existing ingredient '%s'",
					ingredient.Name(), existing.Name()),
			)
		}
	}

	next := make([]Ingredient, 0, len(p.ingredients)+1)
	next = append(next, p.ingredients...)
	next = append(next, ingredient)

	return p.withIngredients(next), nil
}

// RemoveIngredient returns a new pancake without the first ingredient whose
// name matches name, ignoring case.
func (p Pancake) RemoveIngredient(name string) (Pancake, error) {
	if strings.TrimSpace(name) == "" {
		return p, errs.NewValueIsRequiredError("ingredient name")
	}

	for idx, existing := range p.ingredients {
		if !existing.HasName(name) {
			continue
		}

		next := make([]Ingredient, 0, len(p.ingredients)-1)
		next = append(next, p.ingredients[:idx]...)
		next = append(next, p.ingredients[idx+1:]...)
		return p.withIngredients(next), nil
	}

	return p, errs.NewValueIsInvalidErrorWithCause(
		"ingredient name",
		fmt.Errorf("ingredient '%s' not found in pancake", name),
	)
}

// HasIngredient reports whether an ingredient named name is present, ignoring case.
func (p Pancake) HasIngredient(name string) bool {
	for _, existing := range p.ingredients {
		if existing.HasName(name) {
			return true
		}
	}
	return false
}

// IsValid reports whether the pancake contains at least one FLOUR and one EGG ingredient.
func (p Pancake) IsValid() bool {
	var hasFlour, hasEgg bool
	for _, ing := range p.ingredients {
		switch ing.Category() { //nolint:exhaustive // only the base categories matter
		case Flour:
			hasFlour = true
		case Egg:
			hasEgg = true
		}
	}
	return hasFlour && hasEgg
}

// Description renders the pancake for people, e.g. "Pancake with: Flour, Egg".
func (p Pancake) Description() string {
	if len(p.ingredients) == 0 {
		return "Empty pancake"
	}

	names := make([]string, 0, len(p.ingredients))
	for _, ing := range p.ingredients {
		names = append(names, ing.Name())
	}
	return "Pancake with: " + strings.Join(names, ", ")
}

// IsEqual compares two pancakes by identifier.
func (p Pancake) IsEqual(other Pancake) bool {
	return p.id.IsEqual(other.id)
}

func (p Pancake) withIngredients(ingredients []Ingredient) Pancake {
	return Pancake{
		id:          p.id,
		ingredients: ingredients,
		guard:       p.guard,
	}
}
