package guard_test

import (
	"errors"
	"testing"

	"pancakelab/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("constructed_guard_ignores_nil_error", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(nil)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("Topping must be created via NewTopping")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuardUsageExample(t *testing.T) {
	type Topping struct {
		name  string
		guard guard.ConstructorGuard
	}

	errToppingNotConstructed := errors.New("Topping must be created via NewTopping")

	newTopping := func(name string) (Topping, error) {
		if name == "" {
			return Topping{}, errors.New("name is required")
		}
		return Topping{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		topping, err := newTopping("Honey")

		// Then
		require.NoError(t, err)
		require.NoError(t, topping.guard.Validate(errToppingNotConstructed))
		assert.Equal(t, "Honey", topping.name)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var topping Topping

		// When
		err := topping.guard.Validate(errToppingNotConstructed)

		// Then
		assert.Equal(t, errToppingNotConstructed, err)
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		// Given
		topping, _ := newTopping("Syrup")

		// When
		clone := topping

		// Then
		require.NoError(t, clone.guard.Validate(errToppingNotConstructed))
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
