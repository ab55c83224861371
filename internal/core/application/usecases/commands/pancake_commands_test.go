package commands_test

import (
	"testing"

	"pancakelab/internal/core/application/usecases/commands"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddPancakeCommand(t *testing.T) {
	t.Run("should keep both ids", func(t *testing.T) {
		orderID, pancakeID := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewAddPancakeCommand(orderID, pancakeID)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, pancakeID, cmd.PancakeID())
	})

	t.Run("should reject zero ids", func(t *testing.T) {
		_, err := commands.NewAddPancakeCommand(kernel.UUID{}, kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.AddPancakeCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAddPancakeCommandIsNotConstructed)
	})
}

func TestNewRemovePancakeCommand(t *testing.T) {
	orderID, pancakeID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewRemovePancakeCommand(orderID, pancakeID)
	require.NoError(t, err)
	assert.Equal(t, pancakeID, cmd.PancakeID())

	_, err = commands.NewRemovePancakeCommand(orderID, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero commands.RemovePancakeCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrRemovePancakeCommandIsNotConstructed)
}

func TestNewAddIngredientCommand(t *testing.T) {
	t.Run("should build the ingredient", func(t *testing.T) {
		cmd, err := commands.NewAddIngredientCommand(kernel.NewUUID(), kernel.NewUUID(), "Honey", pancake.SweetTopping)

		require.NoError(t, err)
		assert.Equal(t, "Honey", cmd.Ingredient().Name())
		assert.True(t, cmd.Ingredient().IsSweet())
	})

	t.Run("should report every invalid argument", func(t *testing.T) {
		_, err := commands.NewAddIngredientCommand(kernel.UUID{}, kernel.NewUUID(), "", pancake.UnknownCategory)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the mustard and chocolate name", func(t *testing.T) {
		_, err := commands.NewAddIngredientCommand(kernel.NewUUID(), kernel.NewUUID(), "chocolate mustard", pancake.Spice)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewRemoveIngredientCommand(t *testing.T) {
	cmd, err := commands.NewRemoveIngredientCommand(kernel.NewUUID(), kernel.NewUUID(), "  Egg ")
	require.NoError(t, err)
	assert.Equal(t, "Egg", cmd.Name())

	_, err = commands.NewRemoveIngredientCommand(kernel.NewUUID(), kernel.NewUUID(), " ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.RemoveIngredientCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrRemoveIngredientCommandIsNotConstructed)
}
