package commands

import (
	"errors"
	"strings"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

var ErrRemoveIngredientCommandIsNotConstructed = errors.New(
	"RemoveIngredientCommand must be created via NewRemoveIngredientCommand constructor",
)

// RemoveIngredientCommand represents a request to take an ingredient off a pancake.
// The name is matched case-insensitively.
type RemoveIngredientCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	pancakeID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewRemoveIngredientCommand creates a command to remove the ingredient called name.
func NewRemoveIngredientCommand(orderID, pancakeID kernel.UUID, name string) (RemoveIngredientCommand, error) {
	cmd := RemoveIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPancakeID(pancakeID),
		cmd.setName(name),
	); err != nil {
		return RemoveIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveIngredientCommand) Validate() error {
	return c.guard.Validate(ErrRemoveIngredientCommandIsNotConstructed)
}

// OrderID returns the order owning the pancake.
func (c RemoveIngredientCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PancakeID returns the pancake losing the ingredient.
func (c RemoveIngredientCommand) PancakeID() kernel.UUID {
	return c.pancakeID
}

// Name returns the ingredient name to match.
func (c RemoveIngredientCommand) Name() string {
	return c.name
}

func (c *RemoveIngredientCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveIngredientCommand) setPancakeID(pancakeID kernel.UUID) error {
	if err := pancakeID.Validate(); err != nil {
		return err
	}

	c.pancakeID = pancakeID
	return nil
}

func (c *RemoveIngredientCommand) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("ingredient name")
	}

	c.name = trimmed
	return nil
}
