package commands

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/guard"
)

var ErrAddPancakeCommandIsNotConstructed = errors.New(
	"AddPancakeCommand must be created via NewAddPancakeCommand constructor",
)

// AddPancakeCommand represents a request to add an empty pancake to an order.
// The caller chooses the pancake identifier, which makes the command safe to
// log and replay.
type AddPancakeCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	pancakeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddPancakeCommand creates a command to add a pancake identified by pancakeID.
func NewAddPancakeCommand(orderID, pancakeID kernel.UUID) (AddPancakeCommand, error) {
	cmd := AddPancakeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPancakeID(pancakeID),
	); err != nil {
		return AddPancakeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPancakeCommand) Validate() error {
	return c.guard.Validate(ErrAddPancakeCommandIsNotConstructed)
}

// OrderID returns the order receiving the pancake.
func (c AddPancakeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PancakeID returns the identifier of the new pancake.
func (c AddPancakeCommand) PancakeID() kernel.UUID {
	return c.pancakeID
}

func (c *AddPancakeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPancakeCommand) setPancakeID(pancakeID kernel.UUID) error {
	if err := pancakeID.Validate(); err != nil {
		return err
	}

	c.pancakeID = pancakeID
	return nil
}
