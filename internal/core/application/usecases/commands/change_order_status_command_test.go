package commands_test

import (
	"testing"

	"pancakelab/internal/core/application/usecases/commands"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should accept every declared transition", func(t *testing.T) {
		for _, tr := range order.Transitions() {
			cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), tr)

			require.NoError(t, err)
			assert.Equal(t, tr, cmd.Transition())
		}
	})

	t.Run("should reject unknown transition and zero id together", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.TransitionUnknown)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should complete a valid order", func(t *testing.T) {
		// Given
		ctx := t.Context()
		current, _ := newOrderWithPancake(t,
			mustIngredient(t, "Flour", pancake.Flour),
			mustIngredient(t, "Egg", pancake.Egg))
		cmd, _ := commands.NewChangeOrderStatusCommand(current.ID(), order.TransitionComplete)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
		repo.On("Save", ctx, savedOrder(func(o *order.Order) bool {
			return o.Status() == order.Completed
		})).Return(nil).Once()

		h := commands.NewChangeOrderStatusCommandHandler(repo)

		// When
		updated, err := h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Completed, updated.Status())
		repo.AssertExpectations(t)
	})

	t.Run("should refuse to complete an order with an invalid pancake", func(t *testing.T) {
		ctx := t.Context()
		current, _ := newOrderWithPancake(t, mustIngredient(t, "Flour", pancake.Flour))
		cmd, _ := commands.NewChangeOrderStatusCommand(current.ID(), order.TransitionComplete)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once()

		h := commands.NewChangeOrderStatusCommandHandler(repo)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrOrderHasInvalidPancake)
		assert.Equal(t, errs.KindIllegalState, errs.KindOf(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should refuse to deliver a Created order", func(t *testing.T) {
		ctx := t.Context()
		current := newTestOrder(t)
		cmd, _ := commands.NewChangeOrderStatusCommand(current.ID(), order.TransitionDeliver)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once()

		h := commands.NewChangeOrderStatusCommandHandler(repo)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrIllegalState)
	})

	t.Run("should cancel a Created order", func(t *testing.T) {
		ctx := t.Context()
		current := newTestOrder(t)
		cmd, _ := commands.NewChangeOrderStatusCommand(current.ID(), order.TransitionCancel)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
		repo.On("Save", ctx, mock.Anything).Return(nil).Once()

		h := commands.NewChangeOrderStatusCommandHandler(repo)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, updated.Status())
	})
}
