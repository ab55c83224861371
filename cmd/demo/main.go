// Command demo walks one order through its whole lifecycle against the
// in-memory store and shows the validation failures along the way.
package main

import (
	"context"
	"fmt"
	"os"

	"pancakelab/cmd"
	"pancakelab/internal/adapters/out/memory/orderrepo"
	"pancakelab/internal/core/application/coordinator"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"
)

type ingredient struct {
	name     string
	category pancake.Category
}

func main() {
	logger := cmd.NewLogger(cmd.LogConfig{Level: "warn", Format: "text"}, os.Stderr)
	c := coordinator.New(orderrepo.NewInMemoryOrderRepository(), coordinator.WithLogger(logger))

	if err := run(context.Background(), c); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed (%s): %v\n", errs.KindOf(err), err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *coordinator.Coordinator) error {
	fmt.Print("Pancake Lab\n\n")

	fmt.Println("1. Creating an order")
	orderID, err := c.CreateOrder(ctx, "BuildingA", "101")
	if err != nil {
		return err
	}
	fmt.Println("   Order created with ID:", orderID)

	fmt.Println("2. Adding pancakes")
	sweet, err := addPancake(ctx, c, orderID,
		ingredient{"Flour", pancake.Flour},
		ingredient{"Egg", pancake.Egg},
		ingredient{"Sugar", pancake.Sugar},
		ingredient{"Chocolate", pancake.SweetTopping},
	)
	if err != nil {
		return err
	}
	savory, err := addPancake(ctx, c, orderID,
		ingredient{"Flour", pancake.Flour},
		ingredient{"Egg", pancake.Egg},
		ingredient{"Salt", pancake.Salt},
		ingredient{"Cheese", pancake.SavoryTopping},
	)
	if err != nil {
		return err
	}
	fmt.Println("   Added pancakes:", sweet, savory)

	fmt.Println("3. Viewing the order")
	if err = printOrder(ctx, c, orderID); err != nil {
		return err
	}

	fmt.Println("4. Moving the order through the kitchen")
	steps := []struct {
		name  string
		apply func(context.Context, kernel.UUID) error
	}{
		{"completed", c.CompleteOrder},
		{"preparing", c.StartPreparing},
		{"ready for delivery", c.MarkReadyForDelivery},
		{"delivered", c.DeliverOrder},
	}
	for _, step := range steps {
		if err = step.apply(ctx, orderID); err != nil {
			return err
		}
		fmt.Println("   Order", step.name)
	}

	fmt.Println("5. Final order status")
	if err = printOrder(ctx, c, orderID); err != nil {
		return err
	}

	fmt.Println("6. Rejected requests")
	expectFailure("delivering twice", c.DeliverOrder(ctx, orderID))

	_, err = c.CreateOrder(ctx, "Building-A", "101")
	expectFailure("building with a hyphen", err)

	otherID, err := c.CreateOrder(ctx, "BuildingB", "202")
	if err != nil {
		return err
	}
	mixed, err := addPancake(ctx, c, otherID,
		ingredient{"Flour", pancake.Flour},
		ingredient{"Egg", pancake.Egg},
		ingredient{"Chocolate", pancake.SweetTopping},
	)
	if err != nil {
		return err
	}
	expectFailure("mustard on chocolate", c.AddIngredient(ctx, otherID, mixed, "Mustard", pancake.Condiment))

	half, err := addPancake(ctx, c, otherID, ingredient{"Flour", pancake.Flour})
	if err != nil {
		return err
	}
	expectFailure("completing with an incomplete pancake", c.CompleteOrder(ctx, otherID))
	if err = c.RemovePancake(ctx, otherID, half); err != nil {
		return err
	}

	fmt.Println("7. Active orders")
	active, err := c.GetActiveOrders(ctx)
	if err != nil {
		return err
	}
	fmt.Println("   Active orders:", len(active))

	fmt.Println("\nDemo completed successfully!")
	return nil
}

func addPancake(ctx context.Context, c *coordinator.Coordinator, orderID kernel.UUID, ings ...ingredient) (kernel.UUID, error) {
	pancakeID, err := c.AddPancake(ctx, orderID)
	if err != nil {
		return kernel.UUID{}, err
	}

	for _, ing := range ings {
		if err = c.AddIngredient(ctx, orderID, pancakeID, ing.name, ing.category); err != nil {
			return kernel.UUID{}, err
		}
	}

	return pancakeID, nil
}

func printOrder(ctx context.Context, c *coordinator.Coordinator, orderID kernel.UUID) error {
	o, err := c.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	fmt.Println("   Order:", o.DeliveryAddress)
	fmt.Println("   Status:", o.Status)
	fmt.Println("   Active:", o.IsActive)
	for _, p := range o.Pancakes {
		fmt.Printf("     - %s (valid: %t)\n", p.Description, p.IsValid)
	}

	return nil
}

func expectFailure(what string, err error) {
	if err == nil {
		fmt.Printf("   %s: unexpectedly accepted\n", what)
		return
	}
	fmt.Printf("   %s: rejected as %s (%v)\n", what, errs.KindOf(err), err)
}
