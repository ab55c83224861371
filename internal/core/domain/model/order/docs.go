// Package order provides the Order aggregate root, its status state machine and
// the domain events emitted when an order changes.
//
// The package includes:
//   - Order: An immutable aggregate holding the delivery address, the pancakes and the status
//   - Status: The order lifecycle stages
//   - Transition: The named status changes, resolved through an explicit transition table
//   - Event: A record of a change, published after it has been persisted
//
// Key business rules:
//   - The workflow is Created -> Completed -> Preparing -> ReadyForDelivery -> Delivered,
//     with Cancelled reachable only from Created
//   - Pancakes can be added or removed only while the order is Created
//   - An order can be completed only when it has pancakes and every pancake is valid
//   - Cancelled and Delivered are terminal
//
// Every Order method that changes state returns a new *Order and leaves the
// receiver untouched. A failed operation returns a nil order and an error whose
// kind is reported by errs.KindOf.
package order
