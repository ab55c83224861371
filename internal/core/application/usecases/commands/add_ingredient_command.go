package commands

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/guard"
)

var ErrAddIngredientCommandIsNotConstructed = errors.New(
	"AddIngredientCommand must be created via NewAddIngredientCommand constructor",
)

// AddIngredientCommand represents a request to put an ingredient on a pancake.
// The ingredient itself is built in the constructor, so an empty name, an
// unknown category or a forbidden name fail before the order is loaded.
//
// Example:
//
//	cmd, err := NewAddIngredientCommand(orderID, pancakeID, "Maple Syrup", pancake.SweetTopping)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type AddIngredientCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pancakeID  kernel.UUID
	ingredient pancake.Ingredient

	guard guard.ConstructorGuard
}

// NewAddIngredientCommand creates a command to add the named ingredient to a pancake.
func NewAddIngredientCommand(
	orderID, pancakeID kernel.UUID,
	name string,
	category pancake.Category,
) (AddIngredientCommand, error) {
	cmd := AddIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPancakeID(pancakeID),
		cmd.setIngredient(name, category),
	); err != nil {
		return AddIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddIngredientCommand) Validate() error {
	return c.guard.Validate(ErrAddIngredientCommandIsNotConstructed)
}

// OrderID returns the order owning the pancake.
func (c AddIngredientCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PancakeID returns the pancake receiving the ingredient.
func (c AddIngredientCommand) PancakeID() kernel.UUID {
	return c.pancakeID
}

// Ingredient returns the ingredient to add.
func (c AddIngredientCommand) Ingredient() pancake.Ingredient {
	return c.ingredient
}

func (c *AddIngredientCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddIngredientCommand) setPancakeID(pancakeID kernel.UUID) error {
	if err := pancakeID.Validate(); err != nil {
		return err
	}

	c.pancakeID = pancakeID
	return nil
}

func (c *AddIngredientCommand) setIngredient(name string, category pancake.Category) error {
	ingredient, err := pancake.NewIngredient(name, category)
	if err != nil {
		return err
	}

	c.ingredient = ingredient
	return nil
}
