package errs

import "errors"

// Kind is the coarse classification of a failure, independent of its concrete type.
type Kind int

const (
	// KindUnknown is any error that does not belong to the taxonomy below.
	KindUnknown Kind = iota

	// KindInvalidArgument is malformed or missing input. Always caller-fixable.
	KindInvalidArgument

	// KindNotFound is a reference to an order, pancake or ingredient that does not exist.
	KindNotFound

	// KindIllegalState is an operation attempted from a state that does not permit it.
	KindIllegalState

	// KindUnavailable is an infrastructure failure. The caller decides whether to retry.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindNotFound:
		return "NotFound"
	case KindIllegalState:
		return "IllegalState"
	case KindUnavailable:
		return "Unavailable"
	case KindUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// KindOf classifies err by walking its chain.
// IllegalState and Unavailable are checked first: they may wrap an
// invalid-argument cause but must still be reported as their own kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrIllegalState):
		return KindIllegalState
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}
