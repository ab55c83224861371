package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

var (
	buildingPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	roomPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// ErrDeliveryAddressIsNotConstructed is returned when validating a zero-value DeliveryAddress.
var ErrDeliveryAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery address must be created via NewDeliveryAddress constructor")

// DeliveryAddress identifies where an order is delivered: a building and a room inside it.
// It is an immutable value object; the zero value is invalid.
//
// Invariants:
//   - building is non-empty and contains only ASCII letters and digits
//   - room is non-empty and contains only ASCII digits
//
// Example:
//
//	addr, err := kernel.NewDeliveryAddress("BuildingA", "101")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: BuildingA - Room 101
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	building string
	room     string
	guard    guard.ConstructorGuard
}

// NewDeliveryAddress creates a DeliveryAddress after validating both parts.
// All validation failures are reported together.
//
// Parameters:
//   - building: alphanumeric building name, e.g. "BuildingA"
//   - room: numeric room number, e.g. "101"
//
// Returns:
//   - DeliveryAddress: A valid address
//   - error: errs.ValueIsRequiredError or errs.ValueIsInvalidError for each offending part
func NewDeliveryAddress(building, room string) (DeliveryAddress, error) {
	addr := DeliveryAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setBuilding(building), addr.setRoom(room)); err != nil {
		return DeliveryAddress{}, err
	}

	return addr, nil
}

// Validate reports whether the address was created through NewDeliveryAddress.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Building returns the building name.
func (a DeliveryAddress) Building() string {
	return a.building
}

// Room returns the room number.
func (a DeliveryAddress) Room() string {
	return a.room
}

// IsEqual compares two addresses by building and room.
func (a DeliveryAddress) IsEqual(other DeliveryAddress) bool {
	return a.building == other.building && a.room == other.room
}

// String renders the address as "<building> - Room <room>".
func (a DeliveryAddress) String() string {
	return fmt.Sprintf("%s - Room %s", a.building, a.room)
}

func (a *DeliveryAddress) setBuilding(building string) error {
	if building == "" {
		return errs.NewValueIsRequiredError("building")
	}
	if !buildingPattern.MatchString(building) {
		return errs.NewValueIsInvalidErrorWithCause(
			"building",
			fmt.Errorf("%q must contain only alphanumeric characters", building),
		)
	}

	a.building = building
	return nil
}

func (a *DeliveryAddress) setRoom(room string) error {
	if room == "" {
		return errs.NewValueIsRequiredError("room")
	}
	if !roomPattern.MatchString(room) {
		return errs.NewValueIsInvalidErrorWithCause(
			"room",
			fmt.Errorf("%q must contain only numeric characters", room),
		)
	}

	a.room = room
	return nil
}
