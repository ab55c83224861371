package order

import (
	"time"

	"pancakelab/internal/core/domain/model/kernel"
)

// EventType names a change recorded for an order.
type EventType string

const (
	EventOrderCreated          EventType = "OrderCreated"
	EventPancakeAdded          EventType = "PancakeAdded"
	EventPancakeRemoved        EventType = "PancakeRemoved"
	EventIngredientAdded       EventType = "IngredientAdded"
	EventIngredientRemoved     EventType = "IngredientRemoved"
	EventOrderCompleted        EventType = "OrderCompleted"
	EventOrderCancelled        EventType = "OrderCancelled"
	EventOrderPreparing        EventType = "OrderPreparing"
	EventOrderReadyForDelivery EventType = "OrderReadyForDelivery"
	EventOrderDelivered        EventType = "OrderDelivered"
	EventOrderPurged           EventType = "OrderPurged"
)

// EventTypeFor returns the event recorded when t succeeds.
func EventTypeFor(t Transition) EventType {
	switch t {
	case TransitionComplete:
		return EventOrderCompleted
	case TransitionCancel:
		return EventOrderCancelled
	case TransitionStartPreparing:
		return EventOrderPreparing
	case TransitionMarkReadyForDelivery:
		return EventOrderReadyForDelivery
	case TransitionDeliver:
		return EventOrderDelivered
	case TransitionUnknown:
		return ""
	default:
		return ""
	}
}

// Event describes a persisted change to an order. It carries the order state
// after the change, so consumers do not need to read the store back.
//
// PancakeID is the zero UUID and Ingredient is empty for events that do not
// concern a single pancake.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.UUID
	PancakeID  kernel.UUID
	Ingredient string
	Status     Status
	Pancakes   int
	OccurredAt time.Time
}

// NewEvent records eventType for the given revision of an order.
func NewEvent(eventType EventType, o *Order) Event {
	return Event{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		OrderID:    o.ID(),
		Status:     o.Status(),
		Pancakes:   len(o.pancakes),
		OccurredAt: clock(),
	}
}

// WithPancake returns a copy of e that refers to pancakeID.
func (e Event) WithPancake(pancakeID kernel.UUID) Event {
	e.PancakeID = pancakeID
	return e
}

// WithIngredient returns a copy of e that names the ingredient.
func (e Event) WithIngredient(name string) Event {
	e.Ingredient = name
	return e
}

// HasPancake reports whether the event concerns a single pancake.
func (e Event) HasPancake() bool {
	return e.PancakeID.Validate() == nil
}
