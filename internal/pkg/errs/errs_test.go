package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrIllegalState)
		require.Error(t, errs.ErrUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "illegal state", errs.ErrIllegalState.Error())
		assert.Equal(t, "resource is unavailable", errs.ErrUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("username")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		illegalStateErr := errs.NewIllegalStateError("cannot deliver order in status CREATED")
		require.ErrorIs(t, illegalStateErr, errs.ErrIllegalState)

		unavailableErr := errs.NewUnavailableError("postgres")
		require.ErrorIs(t, unavailableErr, errs.ErrUnavailable)
	})
}

func TestIllegalStateError(t *testing.T) {
	t.Run("NewIllegalStateError", func(t *testing.T) {
		err := errs.NewIllegalStateError("cannot cancel order in status DELIVERED")

		assert.Equal(t, "cannot cancel order in status DELIVERED", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "illegal state: cannot cancel order in status DELIVERED", err.Error())
	})

	t.Run("NewIllegalStateErrorWithCause matches both sentinel and cause", func(t *testing.T) {
		reason := errors.New("order has no pancakes")
		err := errs.NewIllegalStateErrorWithCause("cannot complete order", reason)

		assert.Equal(t, "illegal state: cannot complete order (cause: order has no pancakes)", err.Error())
		require.ErrorIs(t, err, errs.ErrIllegalState)
		require.ErrorIs(t, err, reason)
	})
}

func TestUnavailableError(t *testing.T) {
	t.Run("NewUnavailableError", func(t *testing.T) {
		err := errs.NewUnavailableError("order lock")

		assert.Equal(t, "order lock", err.Resource)
		assert.Equal(t, "resource is unavailable: order lock", err.Error())
		assert.Equal(t, errs.ErrUnavailable, err.Unwrap())
	})

	t.Run("NewUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewUnavailableErrorWithCause("postgres", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "resource is unavailable: postgres (cause: connection refused)", err.Error())
	})
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected errs.Kind
	}{
		{"nil", nil, errs.KindUnknown},
		{"plain error", errors.New("boom"), errs.KindUnknown},
		{"required", errs.NewValueIsRequiredError("building"), errs.KindInvalidArgument},
		{"invalid", errs.NewValueIsInvalidError("room"), errs.KindInvalidArgument},
		{"out of range", errs.NewValueIsOutOfRangeError("port", 0, 1, 65535), errs.KindInvalidArgument},
		{"not found", errs.NewObjectNotFoundError("order", "42"), errs.KindNotFound},
		{"illegal state", errs.NewIllegalStateError("nope"), errs.KindIllegalState},
		{"unavailable", errs.NewUnavailableError("redis"), errs.KindUnavailable},
		{
			"illegal state wrapping invalid value",
			errs.NewIllegalStateErrorWithCause("nope", errs.NewValueIsInvalidError("status")),
			errs.KindIllegalState,
		},
		{
			"wrapped with fmt",
			fmt.Errorf("load order: %w", errs.NewObjectNotFoundError("order", "42")),
			errs.KindNotFound,
		},
		{
			"joined validation errors",
			errors.Join(errs.NewValueIsRequiredError("building"), errs.NewValueIsInvalidError("room")),
			errs.KindInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.KindOf(tc.err))
		})
	}

	t.Run("kinds have readable names", func(t *testing.T) {
		assert.Equal(t, "InvalidArgument", errs.KindInvalidArgument.String())
		assert.Equal(t, "NotFound", errs.KindNotFound.String())
		assert.Equal(t, "IllegalState", errs.KindIllegalState.String())
		assert.Equal(t, "Unavailable", errs.KindUnavailable.String())
		assert.Equal(t, "Unknown", errs.Kind(99).String())
	})
}
