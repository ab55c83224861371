package order

import (
	"fmt"
	"strings"

	"pancakelab/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order.
//
// State transitions:
//
//	Created ──> Completed ──> Preparing ──> ReadyForDelivery ──> Delivered
//	   │
//	   └──────> Cancelled
//
// Cancelled and Delivered are terminal. The allowed edges live in a single
// table (see Next); any (status, transition) pair missing from it is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status. Pancakes can be added and removed only here.
	Created

	// Completed means the requester finished composing the order.
	Completed

	// Preparing means the kitchen is working on the order.
	Preparing

	// ReadyForDelivery means the order waits for the deliverer.
	ReadyForDelivery

	// Delivered is a terminal status.
	Delivered

	// Cancelled is a terminal status reachable only from Created.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Created:          "CREATED",
		Completed:        "COMPLETED",
		Preparing:        "PREPARING",
		ReadyForDelivery: "READY_FOR_DELIVERY",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:          "CREATED",
		Completed:        "COMPLETED",
		Preparing:        "PREPARING",
		ReadyForDelivery: "READY_FOR_DELIVERY",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Completed, Preparing, ReadyForDelivery, Delivered, Cancelled}
}

// ParseStatus converts the textual form (e.g. "ready_for_delivery") into a Status.
// Matching is case-insensitive; unknown values are errs.ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known order status", s),
	)
}

// Validate checks if the Status value is one of the declared statuses.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name of the status, e.g. "READY_FOR_DELIVERY".
// It is safe to call on invalid values, which render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the order is still moving through the workflow.
func (s Status) IsActive() bool {
	return s == Created || s == Completed || s == Preparing || s == ReadyForDelivery
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Transition names a status change requested by one of the actors.
type Transition int

const (
	TransitionUnknown Transition = iota
	TransitionComplete
	TransitionCancel
	TransitionStartPreparing
	TransitionMarkReadyForDelivery
	TransitionDeliver
)

func getTransitionStrings() map[Transition]string {
	return map[Transition]string{
		TransitionUnknown:              "unknown",
		TransitionComplete:             "complete",
		TransitionCancel:               "cancel",
		TransitionStartPreparing:       "start preparing",
		TransitionMarkReadyForDelivery: "mark ready for delivery",
		TransitionDeliver:              "deliver",
	}
}

type edge struct {
	from       Status
	transition Transition
}

// getTransitionTable returns every allowed edge of the order state machine.
func getTransitionTable() map[edge]Status {
	return map[edge]Status{
		{Created, TransitionComplete}:               Completed,
		{Created, TransitionCancel}:                 Cancelled,
		{Completed, TransitionStartPreparing}:       Preparing,
		{Preparing, TransitionMarkReadyForDelivery}: ReadyForDelivery,
		{ReadyForDelivery, TransitionDeliver}:       Delivered,
	}
}

// Transitions returns every declared transition.
func Transitions() []Transition {
	return []Transition{
		TransitionComplete,
		TransitionCancel,
		TransitionStartPreparing,
		TransitionMarkReadyForDelivery,
		TransitionDeliver,
	}
}

// String returns the verb phrase used in error messages, e.g. "start preparing".
func (t Transition) String() string {
	if str, ok := getTransitionStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Next resolves the status reached by applying t to s.
//
// Returns:
//   - (next, nil) when the edge exists
//   - (Unknown, *errs.IllegalStateError) for every other pair, including any
//     transition out of a terminal status
//
// Example:
//
//	next, err := order.Completed.Next(order.TransitionStartPreparing)
//	// next == order.Preparing
func (s Status) Next(t Transition) (Status, error) {
	if next, ok := getTransitionTable()[edge{from: s, transition: t}]; ok {
		return next, nil
	}

	return Unknown, errs.NewIllegalStateError(fmt.Sprintf("cannot %s order in status: %s", t, s))
}

// CanApply reports whether t is allowed from s without building an error.
func (s Status) CanApply(t Transition) bool {
	_, ok := getTransitionTable()[edge{from: s, transition: t}]
	return ok
}
