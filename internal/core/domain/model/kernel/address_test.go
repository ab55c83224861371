package kernel_test

import (
	"testing"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryAddress(t *testing.T) {
	t.Run("should create address from alphanumeric building and numeric room", func(t *testing.T) {
		addr, err := kernel.NewDeliveryAddress("BuildingA", "101")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "BuildingA", addr.Building())
		assert.Equal(t, "101", addr.Room())
		assert.Equal(t, "BuildingA - Room 101", addr.String())
	})

	t.Run("should reject building with a hyphen", func(t *testing.T) {
		_, err := kernel.NewDeliveryAddress("Building-A", "101")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		assert.Contains(t, err.Error(), "must contain only alphanumeric characters")
	})

	t.Run("should reject non numeric room", func(t *testing.T) {
		_, err := kernel.NewDeliveryAddress("B1", "10a")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must contain only numeric characters")
	})

	t.Run("should reject surrounding whitespace", func(t *testing.T) {
		_, err := kernel.NewDeliveryAddress(" B1", "101 ")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "building")
		assert.Contains(t, err.Error(), "room")
	})

	t.Run("should report every missing part", func(t *testing.T) {
		addr, err := kernel.NewDeliveryAddress("", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "value is required: building")
		assert.Contains(t, err.Error(), "value is required: room")
		require.Error(t, addr.Validate())
	})
}

func TestDeliveryAddress_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var addr kernel.DeliveryAddress

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDeliveryAddressIsNotConstructed, err)
	})
}

func TestDeliveryAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewDeliveryAddress("North", "7")
	b, _ := kernel.NewDeliveryAddress("North", "7")
	c, _ := kernel.NewDeliveryAddress("North", "8")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
