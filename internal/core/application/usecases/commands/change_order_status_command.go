package commands

import (
	"errors"
	"fmt"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents one step of the order workflow: complete,
// cancel, start preparing, mark ready for delivery or deliver.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.TransitionDeliver)
//	delivered, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrIllegalState) {
//	    // the order is not ready for delivery yet
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	transition order.Transition

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command applying transition to the order orderID.
func NewChangeOrderStatusCommand(orderID kernel.UUID, transition order.Transition) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransition(transition),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Transition returns the requested workflow step.
func (c ChangeOrderStatusCommand) Transition() order.Transition {
	return c.transition
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTransition(transition order.Transition) error {
	for _, t := range order.Transitions() {
		if t == transition {
			c.transition = transition
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"transition",
		fmt.Errorf("%d is not a valid order transition", transition),
	)
}
