package pancake

import (
	"errors"
	"fmt"
	"strings"

	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

var (
	sweetMarkers  = []string{"sugar", "chocolate", "honey", "syrup", "cream"}
	savoryMarkers = []string{"salt", "pepper", "mustard", "cheese"}
)

// ErrIngredientIsNotConstructed is returned when validating a zero-value Ingredient.
var ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")

// Ingredient is a named, categorized pancake component. It is an immutable value
// object; its sweet and savory flags are derived once, at construction, from the
// category and from marker words in the name.
//
// Invariants:
//   - name is non-empty after trimming; its display case is preserved
//   - category is one of the declared categories
//   - an ingredient is never both sweet and savory
//
// Example:
//
//	honey, err := pancake.NewIngredient("Honey", pancake.SweetTopping)
//	if err != nil {
//	    // Handle validation error
//	}
//	honey.IsSweet() // true
type Ingredient struct { //nolint:recvcheck //using for validation
	name     string
	category Category
	sweet    bool
	savory   bool
	guard    guard.ConstructorGuard
}

// NewIngredient creates an Ingredient after validating its name and category.
//
// Parameters:
//   - name: display name, e.g. "Dark Chocolate"
//   - category: one of the declared categories
//
// Returns:
//   - Ingredient: the constructed value
//   - error: errs.ValueIsRequiredError for an empty name, errs.ValueIsInvalidError
//     for an unknown category, a mustard and chocolate/milk name, or a name that
//     reads as both sweet and savory
func NewIngredient(name string, category Category) (Ingredient, error) {
	ing := Ingredient{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(ing.setName(name), ing.setCategory(category)); err != nil {
		return Ingredient{}, err
	}

	lower := strings.ToLower(ing.name)
	ing.sweet = category.isSweet() || containsAny(lower, sweetMarkers)
	ing.savory = category.isSavory() || containsAny(lower, savoryMarkers)

	if ing.sweet && ing.savory {
		return Ingredient{}, errs.NewValueIsInvalidErrorWithCause(
			"ingredient",
			fmt.Errorf("'%s' (%s) cannot be both sweet and savory", ing.name, category),
		)
	}

	return ing, nil
}

// Validate reports whether the ingredient was created through NewIngredient.
func (i Ingredient) Validate() error {
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// Name returns the display name.
func (i Ingredient) Name() string {
	return i.name
}

// Category returns the declared category.
func (i Ingredient) Category() Category {
	return i.category
}

// IsSweet reports whether the ingredient is classified as sweet.
func (i Ingredient) IsSweet() bool {
	return i.sweet
}

// IsSavory reports whether the ingredient is classified as savory.
func (i Ingredient) IsSavory() bool {
	return i.savory
}

// IsCompatibleWith reports whether i and other may share a pancake.
// The relation is symmetric.
//
// Two ingredients are incompatible when one is sweet and the other savory, or
// when one name mentions mustard and the other mentions chocolate. The second
// check only looks at names, so it also fires for ingredients whose declared
// category carries no flavor.
func (i Ingredient) IsCompatibleWith(other Ingredient) bool {
	if (i.sweet && other.savory) || (i.savory && other.sweet) {
		return false
	}

	a, b := strings.ToLower(i.name), strings.ToLower(other.name)
	if (strings.Contains(a, "mustard") && strings.Contains(b, "chocolate")) ||
		(strings.Contains(a, "chocolate") && strings.Contains(b, "mustard")) {
		return false
	}

	return true
}

// HasName compares the ingredient name with name, ignoring case.
func (i Ingredient) HasName(name string) bool {
	return strings.EqualFold(i.name, strings.TrimSpace(name))
}

// IsEqual compares two ingredients by name and category.
func (i Ingredient) IsEqual(other Ingredient) bool {
	return i.name == other.name && i.category == other.category
}

// String returns the display name.
func (i Ingredient) String() string {
	return i.name
}

func (i *Ingredient) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("ingredient name")
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "mustard") &&
		(strings.Contains(lower, "chocolate") || strings.Contains(lower, "milk")) {
		return errs.NewValueIsInvalidErrorWithCause(
			"ingredient name",
			fmt.Errorf("'%s' combines mustard with chocolate or milk", trimmed),
		)
	}

	i.name = trimmed
	return nil
}

func (i *Ingredient) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
