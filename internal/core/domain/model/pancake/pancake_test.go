package pancake_test

import (
	"testing"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPancake(t *testing.T) {
	t.Run("should create empty pancake", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := pancake.NewPancake(id)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Empty(t, p.Ingredients())
		assert.False(t, p.IsValid())
		assert.Equal(t, "Empty pancake", p.Description())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		_, err := pancake.NewPancake(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var p pancake.Pancake

		require.ErrorIs(t, p.Validate(), pancake.ErrPancakeIsNotConstructed)
	})
}

func TestPancake_AddIngredient(t *testing.T) {
	flour := mustIngredient(t, "Flour", pancake.Flour)
	egg := mustIngredient(t, "Egg", pancake.Egg)
	chocolate := mustIngredient(t, "Chocolate", pancake.SweetTopping)
	mustard := mustIngredient(t, "Mustard", pancake.Condiment)

	t.Run("should append in insertion order and leave the receiver untouched", func(t *testing.T) {
		// Given
		empty, _ := pancake.NewPancake(kernel.NewUUID())

		// When
		withFlour, err := empty.AddIngredient(flour)
		require.NoError(t, err)
		withBoth, err := withFlour.AddIngredient(egg)
		require.NoError(t, err)

		// Then
		assert.Empty(t, empty.Ingredients())
		assert.Len(t, withFlour.Ingredients(), 1)
		assert.Equal(t, "Pancake with: Flour, Egg", withBoth.Description())
		assert.True(t, withBoth.IsValid())
		assert.False(t, withFlour.IsValid())
		assert.True(t, withBoth.IsEqual(empty))
	})

	t.Run("should reject incompatible ingredient without partial append", func(t *testing.T) {
		// Given
		p, _ := pancake.NewPancake(kernel.NewUUID())
		p, _ = p.AddIngredient(flour)
		p, _ = p.AddIngredient(chocolate)

		// When
		got, err := p.AddIngredient(mustard)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "ingredient 'Mustard' is not compatible with existing ingredient 'Chocolate'")
		assert.Len(t, got.Ingredients(), 2)
		assert.Len(t, p.Ingredients(), 2)
	})

	t.Run("should reject an ingredient that was not constructed", func(t *testing.T) {
		p, _ := pancake.NewPancake(kernel.NewUUID())

		_, err := p.AddIngredient(pancake.Ingredient{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("copies returned by Ingredients do not alias the pancake", func(t *testing.T) {
		p, _ := pancake.NewPancake(kernel.NewUUID())
		p, _ = p.AddIngredient(flour)

		list := p.Ingredients()
		list[0] = egg

		assert.Equal(t, "Flour", p.Ingredients()[0].Name())
	})

	t.Run("sibling revisions do not share backing arrays", func(t *testing.T) {
		base, _ := pancake.NewPancake(kernel.NewUUID())
		base, _ = base.AddIngredient(flour)

		left, _ := base.AddIngredient(egg)
		right, _ := base.AddIngredient(chocolate)

		assert.Equal(t, "Pancake with: Flour, Egg", left.Description())
		assert.Equal(t, "Pancake with: Flour, Chocolate", right.Description())
	})
}

func TestPancake_RemoveIngredient(t *testing.T) {
	flour := mustIngredient(t, "Flour", pancake.Flour)
	egg := mustIngredient(t, "Egg", pancake.Egg)

	build := func(t *testing.T, ingredients ...pancake.Ingredient) pancake.Pancake {
		t.Helper()
		p, err := pancake.RestorePancake(kernel.NewUUID(), ingredients)
		require.NoError(t, err)
		return p
	}

	t.Run("should remove first case-insensitive match only", func(t *testing.T) {
		// Given
		p := build(t, flour, egg, flour)

		// When
		got, err := p.RemoveIngredient("FLOUR")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "Pancake with: Egg, Flour", got.Description())
		assert.Equal(t, "Pancake with: Flour, Egg, Flour", p.Description())
		assert.True(t, got.HasIngredient("flour"))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p := build(t, flour)

		_, err := p.RemoveIngredient(" ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when ingredient is missing", func(t *testing.T) {
		p := build(t, flour)

		got, err := p.RemoveIngredient("Egg")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not found")
		assert.Len(t, got.Ingredients(), 1)
	})

	t.Run("removing egg makes a valid pancake invalid", func(t *testing.T) {
		p := build(t, flour, egg)

		got, err := p.RemoveIngredient("egg")

		require.NoError(t, err)
		assert.True(t, p.IsValid())
		assert.False(t, got.IsValid())
		assert.False(t, got.HasIngredient("Egg"))
	})
}

func TestRestorePancake(t *testing.T) {
	t.Run("should reject stored incompatible combinations", func(t *testing.T) {
		chocolate := mustIngredient(t, "Chocolate", pancake.SweetTopping)
		bacon := mustIngredient(t, "Bacon", pancake.SavoryTopping)

		_, err := pancake.RestorePancake(kernel.NewUUID(), []pancake.Ingredient{chocolate, bacon})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := pancake.RestorePancake(kernel.UUID{}, nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
