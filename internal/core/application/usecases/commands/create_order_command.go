package commands

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order for a delivery address.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("BuildingA", "101")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	address kernel.DeliveryAddress

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Building must be alphanumeric and room numeric; both errors are reported together.
func NewCreateOrderCommand(building, room string) (CreateOrderCommand, error) {
	address, err := kernel.NewDeliveryAddress(building, room)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Address returns the delivery address of the new order.
func (c CreateOrderCommand) Address() kernel.DeliveryAddress {
	return c.address
}
