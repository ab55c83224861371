package order

import (
	"errors"
	"fmt"
	"time"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoPancakes is the cause of an IllegalStateError returned by Complete
	// for an empty order.
	ErrOrderHasNoPancakes = errors.New("cannot complete order with no pancakes")

	// ErrOrderHasInvalidPancake is the cause of an IllegalStateError returned by Complete
	// when some pancake lacks flour or egg.
	ErrOrderHasInvalidPancake = errors.New("pancake is not valid")
)

// Order is the aggregate root of the pancake lab: a delivery address, an ordered
// list of pancakes and a lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and delivery address
//   - Pancakes change only while the status is Created
//   - Completion requires at least one pancake and all pancakes valid
//   - Status transitions follow the table behind Status.Next
//   - updatedAt strictly increases with every change
//
// An *Order is never modified after construction. Every state-changing method
// returns a new *Order, so a value loaded by one goroutine cannot be torn by a
// write performed in another.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// address is where the order is delivered
	address kernel.DeliveryAddress

	// pancakes in insertion order; never shared with another Order
	pancakes []pancake.Pancake

	// status represents the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new, empty order in Created status with a generated identifier.
//
// Parameters:
//   - address: Delivery address built with kernel.NewDeliveryAddress
//
// Returns:
//   - *Order: The created order
//   - error: kernel.ErrDeliveryAddressIsNotConstructed for a zero-value address
//
// Example:
//
//	address, err := kernel.NewDeliveryAddress("BuildingA", "101")
//	if err != nil {
//	    // Handle validation error
//	}
//	o, err := order.NewOrder(address)
func NewOrder(address kernel.DeliveryAddress) (*Order, error) {
	now := clock()
	o := &Order{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(kernel.NewUUID()),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. It is used by the store
// adapters and validates every field, so a corrupted row surfaces as an error
// instead of an order that violates its invariants.
//
// Returns:
//   - *Order: The restored order
//   - error: Joined validation errors for every offending field
func RestoreOrder(
	id kernel.UUID,
	address kernel.DeliveryAddress,
	pancakes []pancake.Pancake,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAddress(address),
		o.setPancakes(pancakes),
		o.setStatus(status),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order is nil or was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers. Status and content
// are ignored, so two revisions of the same order are equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Address returns the delivery address.
func (o *Order) Address() kernel.DeliveryAddress {
	return o.address
}

// DeliveryAddress renders the address as "<building> - Room <room>".
func (o *Order) DeliveryAddress() string {
	return o.address.String()
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the latest change in UTC.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Pancakes returns a copy of the pancakes in insertion order.
func (o *Order) Pancakes() []pancake.Pancake {
	out := make([]pancake.Pancake, len(o.pancakes))
	copy(out, o.pancakes)
	return out
}

// FindPancake looks a pancake up by identifier.
func (o *Order) FindPancake(id kernel.UUID) (pancake.Pancake, bool) {
	for _, p := range o.pancakes {
		if p.ID().IsEqual(id) {
			return p, true
		}
	}
	return pancake.Pancake{}, false
}

// IsActive reports whether the order has not reached a terminal status.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// CanBeModified reports whether pancakes can still be added or removed.
func (o *Order) CanBeModified() bool {
	return o.status == Created
}

// String renders the order for logs, e.g.
// "Order 6f1c... - BuildingA - Room 101 (CREATED) - 2 pancakes".
func (o *Order) String() string {
	return fmt.Sprintf("Order %s - %s (%s) - %d pancakes",
		o.id, o.DeliveryAddress(), o.status, len(o.pancakes))
}

// AddPancake returns a new order with p appended.
//
// Returns:
//   - *Order: the new revision
//   - error: *errs.IllegalStateError when the order is not Created,
//     errs.ValueIsRequiredError when p was not constructed, or
//     errs.ValueIsInvalidError when a pancake with the same id is already present
//
// Example:
//
//	p, _ := pancake.NewPancake(kernel.NewUUID())
//	o, err = o.AddPancake(p)
func (o *Order) AddPancake(p pancake.Pancake) (*Order, error) {
	if err := o.requireModifiable("add pancake to"); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("pancake", err)
	}
	if _, exists := o.FindPancake(p.ID()); exists {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pancake",
			fmt.Errorf("pancake %s is already part of order %s", p.ID(), o.id),
		)
	}

	next := make([]pancake.Pancake, 0, len(o.pancakes)+1)
	next = append(next, o.pancakes...)
	next = append(next, p)

	return o.with(next, o.status), nil
}

// RemovePancake returns a new order without the pancake identified by id.
//
// Returns:
//   - *Order: the new revision
//   - error: *errs.IllegalStateError when the order is not Created,
//     errs.ValueIsRequiredError for a zero id, or errs.ValueIsInvalidError
//     when the order has no such pancake
func (o *Order) RemovePancake(id kernel.UUID) (*Order, error) {
	if err := o.requireModifiable("remove pancake from"); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("pancake id", err)
	}

	for idx, p := range o.pancakes {
		if !p.ID().IsEqual(id) {
			continue
		}

		next := make([]pancake.Pancake, 0, len(o.pancakes)-1)
		next = append(next, o.pancakes[:idx]...)
		next = append(next, o.pancakes[idx+1:]...)
		return o.with(next, o.status), nil
	}

	return nil, errs.NewValueIsInvalidErrorWithCause(
		"pancake id",
		fmt.Errorf("pancake %s not found in order %s", id, o.id),
	)
}

// Complete moves a Created order to Completed.
//
// The three failure reasons share the IllegalState kind and are told apart
// with errors.Is:
//   - the status is not Created
//   - ErrOrderHasNoPancakes
//   - ErrOrderHasInvalidPancake
//
// Example:
//
//	next, err := o.Complete()
//	if errors.Is(err, order.ErrOrderHasInvalidPancake) {
//	    // ask for flour and egg
//	}
func (o *Order) Complete() (*Order, error) {
	next, err := o.status.Next(TransitionComplete)
	if err != nil {
		return nil, err
	}

	if len(o.pancakes) == 0 {
		return nil, errs.NewIllegalStateErrorWithCause(
			fmt.Sprintf("cannot complete order %s", o.id), ErrOrderHasNoPancakes)
	}

	for _, p := range o.pancakes {
		if !p.IsValid() {
			return nil, errs.NewIllegalStateErrorWithCause(
				fmt.Sprintf("cannot complete order %s", o.id),
				fmt.Errorf("%w: %s", ErrOrderHasInvalidPancake, p.ID()),
			)
		}
	}

	return o.with(o.pancakes, next), nil
}

// Cancel moves a Created order to Cancelled.
func (o *Order) Cancel() (*Order, error) {
	return o.Apply(TransitionCancel)
}

// StartPreparing moves a Completed order to Preparing.
func (o *Order) StartPreparing() (*Order, error) {
	return o.Apply(TransitionStartPreparing)
}

// MarkReadyForDelivery moves a Preparing order to ReadyForDelivery.
func (o *Order) MarkReadyForDelivery() (*Order, error) {
	return o.Apply(TransitionMarkReadyForDelivery)
}

// Deliver moves a ReadyForDelivery order to Delivered.
func (o *Order) Deliver() (*Order, error) {
	return o.Apply(TransitionDeliver)
}

// Apply performs transition t. TransitionComplete additionally checks the
// pancakes (see Complete); every other transition only consults the table.
func (o *Order) Apply(t Transition) (*Order, error) {
	if t == TransitionComplete {
		return o.Complete()
	}

	next, err := o.status.Next(t)
	if err != nil {
		return nil, err
	}

	return o.with(o.pancakes, next), nil
}

func (o *Order) requireModifiable(action string) error {
	if !o.CanBeModified() {
		return errs.NewIllegalStateError(fmt.Sprintf("cannot %s order in status: %s", action, o.status))
	}
	return nil
}

// with builds the next revision. pancakes must not be mutated afterwards by the caller.
func (o *Order) with(pancakes []pancake.Pancake, status Status) *Order {
	return &Order{
		id:            o.id,
		address:       o.address,
		pancakes:      pancakes,
		status:        status,
		createdAt:     o.createdAt,
		updatedAt:     nextUpdatedAt(o.updatedAt),
		isConstructed: true,
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAddress(address kernel.DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPancakes(pancakes []pancake.Pancake) error {
	out := make([]pancake.Pancake, 0, len(pancakes))
	for _, p := range pancakes {
		if err := p.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("pancake", err)
		}
		for _, seen := range out {
			if seen.IsEqual(p) {
				return errs.NewValueIsInvalidErrorWithCause(
					"pancake",
					fmt.Errorf("pancake %s appears more than once", p.ID()),
				)
			}
		}
		out = append(out, p)
	}
	o.pancakes = out
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt),
		)
	}
	o.createdAt = normalizeTime(createdAt)
	o.updatedAt = normalizeTime(updatedAt)
	return nil
}

// clock returns the current time in the precision stored by every adapter.
func clock() time.Time {
	return normalizeTime(time.Now())
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func nextUpdatedAt(previous time.Time) time.Time {
	now := clock()
	if floor := previous.Add(time.Microsecond); now.Before(floor) {
		return floor
	}
	return now
}
