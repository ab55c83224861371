// Package errs provides standardized error types for the pancake lab application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//   - IllegalStateError: For when an operation is not allowed in the current state
//   - UnavailableError: For when a lock, store or broker cannot serve the request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Errors are grouped into four kinds (see Kind). KindOf classifies any error
// chain, which lets outer layers map failures onto transport codes without
// knowing the concrete types:
//
//	switch errs.KindOf(err) {
//	case errs.KindInvalidArgument:
//	    // 400
//	case errs.KindNotFound:
//	    // 404
//	case errs.KindIllegalState:
//	    // 409
//	case errs.KindUnavailable:
//	    // 503
//	}
package errs
