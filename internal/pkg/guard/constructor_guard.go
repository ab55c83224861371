// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell a value built by its constructor apart from a
// zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the guarded
// value was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was created by its constructor.
// The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrToppingIsNotConstructed = errors.New("Topping must be created via NewTopping")
//
//	type Topping struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTopping(name string) (Topping, error) {
//	    if name == "" {
//	        return Topping{}, errors.New("name is required")
//	    }
//	    return Topping{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Topping) Validate() error {
//	    return t.guard.Validate(ErrToppingIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
