package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pancakelab/internal/core/application/usecases/commands"
	"pancakelab/internal/core/application/usecases/queries"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/core/ports"
)

// Coordinator is the concurrency-safe entry point to the order collection.
// Each method takes plain identifiers and values, builds the matching command
// or query, and runs its handler under the lock.
//
// Example usage:
//
//	c := coordinator.New(repo, coordinator.WithLogger(logger))
//
//	orderID, err := c.CreateOrder(ctx, "BuildingA", "101")
//	pancakeID, err := c.AddPancake(ctx, orderID)
//	err = c.AddIngredient(ctx, orderID, pancakeID, "Flour", pancake.Flour)
//	err = c.AddIngredient(ctx, orderID, pancakeID, "Egg", pancake.Egg)
//	err = c.CompleteOrder(ctx, orderID)
type Coordinator struct {
	lock           Lock
	publisher      ports.OrderEventPublisher
	publishTimeout time.Duration
	logger         *slog.Logger

	createOrder      commands.CreateOrderCommandHandler
	addPancake       commands.AddPancakeCommandHandler
	removePancake    commands.RemovePancakeCommandHandler
	addIngredient    commands.AddIngredientCommandHandler
	removeIngredient commands.RemoveIngredientCommandHandler
	changeStatus     commands.ChangeOrderStatusCommandHandler
	purge            commands.PurgeFinishedOrdersCommandHandler

	getOrder          queries.GetOrderQueryHandler
	getActiveOrders   queries.GetActiveOrdersQueryHandler
	getOrdersByStatus queries.GetOrdersByStatusQueryHandler
}

// New creates a Coordinator over repo. By default it uses a GlobalLock,
// discards events and logs through slog.Default().
func New(repo ports.OrderRepository, opts ...Option) *Coordinator {
	c := &Coordinator{
		lock:           NewGlobalLock(),
		publisher:      discardPublisher{},
		publishTimeout: DefaultPublishTimeout,
		logger:         slog.Default(),

		createOrder:      commands.NewCreateOrderCommandHandler(repo),
		addPancake:       commands.NewAddPancakeCommandHandler(repo),
		removePancake:    commands.NewRemovePancakeCommandHandler(repo),
		addIngredient:    commands.NewAddIngredientCommandHandler(repo),
		removeIngredient: commands.NewRemoveIngredientCommandHandler(repo),
		changeStatus:     commands.NewChangeOrderStatusCommandHandler(repo),
		purge:            commands.NewPurgeFinishedOrdersCommandHandler(repo),

		getOrder:          queries.NewGetOrderQueryHandler(repo),
		getActiveOrders:   queries.NewGetActiveOrdersQueryHandler(repo),
		getOrdersByStatus: queries.NewGetOrdersByStatusQueryHandler(repo),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "coordinator")

	return c
}

// CreateOrder opens a new order for the given building and room and returns its identifier.
func (c *Coordinator) CreateOrder(ctx context.Context, building, room string) (kernel.UUID, error) {
	cmd, err := commands.NewCreateOrderCommand(building, room)
	if err != nil {
		return kernel.UUID{}, err
	}

	var created *order.Order
	err = c.write(ctx, "create order", func(ctx context.Context) ([]order.Event, error) {
		created, err = c.createOrder.Handle(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return []order.Event{order.NewEvent(order.EventOrderCreated, created)}, nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}

// AddPancake adds an empty pancake to the order and returns the new pancake's identifier.
func (c *Coordinator) AddPancake(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	pancakeID := kernel.NewUUID()
	cmd, err := commands.NewAddPancakeCommand(orderID, pancakeID)
	if err != nil {
		return kernel.UUID{}, err
	}

	err = c.write(ctx, "add pancake", func(ctx context.Context) ([]order.Event, error) {
		updated, err := c.addPancake.Handle(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return []order.Event{order.NewEvent(order.EventPancakeAdded, updated).WithPancake(pancakeID)}, nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return pancakeID, nil
}

// RemovePancake drops a pancake from the order.
func (c *Coordinator) RemovePancake(ctx context.Context, orderID, pancakeID kernel.UUID) error {
	cmd, err := commands.NewRemovePancakeCommand(orderID, pancakeID)
	if err != nil {
		return err
	}

	return c.write(ctx, "remove pancake", func(ctx context.Context) ([]order.Event, error) {
		updated, err := c.removePancake.Handle(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return []order.Event{order.NewEvent(order.EventPancakeRemoved, updated).WithPancake(pancakeID)}, nil
	})
}

// AddIngredient puts a new ingredient on a pancake of the order.
func (c *Coordinator) AddIngredient(
	ctx context.Context,
	orderID, pancakeID kernel.UUID,
	name string,
	category pancake.Category,
) error {
	cmd, err := commands.NewAddIngredientCommand(orderID, pancakeID, name, category)
	if err != nil {
		return err
	}

	return c.write(ctx, "add ingredient", func(ctx context.Context) ([]order.Event, error) {
		updated, err := c.addIngredient.Handle(ctx, cmd)
		if err != nil {
			return nil, err
		}
		event := order.NewEvent(order.EventIngredientAdded, updated).
			WithPancake(pancakeID).
			WithIngredient(cmd.Ingredient().Name())
		return []order.Event{event}, nil
	})
}

// RemoveIngredient takes the first ingredient called name off a pancake of the order.
func (c *Coordinator) RemoveIngredient(ctx context.Context, orderID, pancakeID kernel.UUID, name string) error {
	cmd, err := commands.NewRemoveIngredientCommand(orderID, pancakeID, name)
	if err != nil {
		return err
	}

	return c.write(ctx, "remove ingredient", func(ctx context.Context) ([]order.Event, error) {
		updated, err := c.removeIngredient.Handle(ctx, cmd)
		if err != nil {
			return nil, err
		}
		event := order.NewEvent(order.EventIngredientRemoved, updated).
			WithPancake(pancakeID).
			WithIngredient(cmd.Name())
		return []order.Event{event}, nil
	})
}

// CompleteOrder moves a Created order with only valid pancakes to Completed.
func (c *Coordinator) CompleteOrder(ctx context.Context, orderID kernel.UUID) error {
	return c.transition(ctx, orderID, order.TransitionComplete)
}

// CancelOrder moves a Created order to Cancelled.
func (c *Coordinator) CancelOrder(ctx context.Context, orderID kernel.UUID) error {
	return c.transition(ctx, orderID, order.TransitionCancel)
}

// StartPreparing moves a Completed order to Preparing.
func (c *Coordinator) StartPreparing(ctx context.Context, orderID kernel.UUID) error {
	return c.transition(ctx, orderID, order.TransitionStartPreparing)
}

// MarkReadyForDelivery moves a Preparing order to ReadyForDelivery.
func (c *Coordinator) MarkReadyForDelivery(ctx context.Context, orderID kernel.UUID) error {
	return c.transition(ctx, orderID, order.TransitionMarkReadyForDelivery)
}

// DeliverOrder moves a ReadyForDelivery order to Delivered.
func (c *Coordinator) DeliverOrder(ctx context.Context, orderID kernel.UUID) error {
	return c.transition(ctx, orderID, order.TransitionDeliver)
}

// PurgeFinishedOrders deletes Delivered and Cancelled orders last changed more
// than olderThan ago and returns how many were removed.
func (c *Coordinator) PurgeFinishedOrders(ctx context.Context, olderThan time.Duration) (int, error) {
	cmd, err := commands.NewPurgeFinishedOrdersCommand(olderThan)
	if err != nil {
		return 0, err
	}

	var purged int
	err = c.write(ctx, "purge finished orders", func(ctx context.Context) ([]order.Event, error) {
		removed, err := c.purge.Handle(ctx, cmd)
		purged = len(removed)

		events := make([]order.Event, 0, len(removed))
		for _, o := range removed {
			events = append(events, order.NewEvent(order.EventOrderPurged, o))
		}
		return events, err
	})

	return purged, err
}

// GetOrder returns a snapshot of the order, or a NotFound error.
func (c *Coordinator) GetOrder(ctx context.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	unlock, err := c.lock.RLock(ctx)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	defer unlock()

	return c.getOrder.Handle(ctx, query)
}

// GetActiveOrders returns snapshots of every order that is not Delivered or Cancelled.
func (c *Coordinator) GetActiveOrders(ctx context.Context) ([]queries.OrderResponse, error) {
	unlock, err := c.lock.RLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return c.getActiveOrders.Handle(ctx, queries.NewGetActiveOrdersQuery())
}

// GetOrdersByStatus returns snapshots of every order in status.
func (c *Coordinator) GetOrdersByStatus(ctx context.Context, status order.Status) ([]queries.OrderResponse, error) {
	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return nil, err
	}

	unlock, err := c.lock.RLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return c.getOrdersByStatus.Handle(ctx, query)
}

func (c *Coordinator) transition(ctx context.Context, orderID kernel.UUID, t order.Transition) error {
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, t)
	if err != nil {
		return err
	}

	return c.write(ctx, t.String(), func(ctx context.Context) ([]order.Event, error) {
		updated, err := c.changeStatus.Handle(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return []order.Event{order.NewEvent(order.EventTypeFor(t), updated)}, nil
	})
}

// write runs fn under the exclusive lock and publishes the events it returns
// once the lock is released. Events returned together with an error are still
// published: they describe changes that were saved before the failure.
func (c *Coordinator) write(
	ctx context.Context,
	operation string,
	fn func(ctx context.Context) ([]order.Event, error),
) error {
	unlock, err := c.lock.Lock(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "order lock not acquired", "operation", operation, "error", err)
		return err
	}

	var once sync.Once
	release := func() { once.Do(unlock) }
	defer release()

	events, err := fn(ctx)
	release()

	for _, event := range events {
		c.publish(ctx, event)
	}

	if err != nil {
		c.logger.DebugContext(ctx, "operation rejected", "operation", operation, "error", err)
		return err
	}

	c.logger.DebugContext(ctx, "operation applied", "operation", operation, "events", len(events))
	return nil
}

// publish delivers one event with its own deadline. The write it follows is
// already saved, so the caller's cancellation does not abort delivery.
func (c *Coordinator) publish(ctx context.Context, event order.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.publishTimeout)
	defer cancel()

	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.WarnContext(ctx, "failed to publish order event",
			"event", string(event.Type),
			"order_id", event.OrderID.String(),
			"error", err,
		)
	}
}
