// Package pancake provides the Pancake aggregate and the Ingredient value object
// together with the compatibility rules that decide which ingredients may share
// a pancake.
//
// The package includes:
//   - Category: The closed set of ingredient categories
//   - Ingredient: An immutable, categorized ingredient with a derived sweet/savory profile
//   - Pancake: An immutable, ordered collection of mutually compatible ingredients
//
// Key business rules:
//   - An ingredient is sweet if its category is SWEET_TOPPING or its name mentions
//     sugar, chocolate, honey, syrup or cream
//   - An ingredient is savory if its category is SAVORY_TOPPING or CONDIMENT or its
//     name mentions salt, pepper, mustard or cheese
//   - Sweet and savory ingredients never share a pancake, and neither do mustard
//     and chocolate
//   - A pancake is valid when it contains at least one FLOUR and one EGG ingredient
//
// Pancake operations never modify the receiver; each returns a new Pancake value,
// so earlier revisions held by other goroutines stay untouched.
package pancake
