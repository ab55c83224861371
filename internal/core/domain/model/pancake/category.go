package pancake

import (
	"fmt"
	"strings"

	"pancakelab/internal/pkg/errs"
)

// Category classifies an ingredient. The set is closed.
type Category int

const (
	// UnknownCategory is the zero value and is never valid.
	UnknownCategory Category = iota
	Flour
	Egg
	Milk
	Sugar
	Salt
	Butter
	SweetTopping
	SavoryTopping
	Spice
	Condiment
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "UNKNOWN",
		Flour:           "FLOUR",
		Egg:             "EGG",
		Milk:            "MILK",
		Sugar:           "SUGAR",
		Salt:            "SALT",
		Butter:          "BUTTER",
		SweetTopping:    "SWEET_TOPPING",
		SavoryTopping:   "SAVORY_TOPPING",
		Spice:           "SPICE",
		Condiment:       "CONDIMENT",
	}
}

// Categories returns every valid category in declaration order.
func Categories() []Category {
	return []Category{
		Flour, Egg, Milk, Sugar, Salt, Butter, SweetTopping, SavoryTopping, Spice, Condiment,
	}
}

// ParseCategory converts the textual form (e.g. "sweet_topping") into a Category.
// Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.String() == normalized {
			return c, nil
		}
	}

	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"ingredient category",
		fmt.Errorf("%q is not a known ingredient category", s),
	)
}

// Validate reports whether c is one of the declared categories.
func (c Category) Validate() error {
	if c <= UnknownCategory || c > Condiment {
		return errs.NewValueIsInvalidErrorWithCause(
			"ingredient category",
			fmt.Errorf("%d is not a valid ingredient category", c),
		)
	}
	return nil
}

// String returns the upper-case name of the category, or "UNKNOWN".
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

func (c Category) isSweet() bool {
	return c == SweetTopping
}

func (c Category) isSavory() bool {
	return c == SavoryTopping || c == Condiment
}
