package commands

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/guard"
)

var ErrRemovePancakeCommandIsNotConstructed = errors.New(
	"RemovePancakeCommand must be created via NewRemovePancakeCommand constructor",
)

// RemovePancakeCommand represents a request to drop a pancake from an order.
type RemovePancakeCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	pancakeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePancakeCommand creates a command to remove the pancake pancakeID from the order orderID.
func NewRemovePancakeCommand(orderID, pancakeID kernel.UUID) (RemovePancakeCommand, error) {
	cmd := RemovePancakeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPancakeID(pancakeID),
	); err != nil {
		return RemovePancakeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePancakeCommand) Validate() error {
	return c.guard.Validate(ErrRemovePancakeCommandIsNotConstructed)
}

// OrderID returns the order owning the pancake.
func (c RemovePancakeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PancakeID returns the pancake to remove.
func (c RemovePancakeCommand) PancakeID() kernel.UUID {
	return c.pancakeID
}

func (c *RemovePancakeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemovePancakeCommand) setPancakeID(pancakeID kernel.UUID) error {
	if err := pancakeID.Validate(); err != nil {
		return err
	}

	c.pancakeID = pancakeID
	return nil
}
