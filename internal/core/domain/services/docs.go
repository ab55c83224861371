// Package services provides domain services that orchestrate business operations
// spanning more than one aggregate of the pancake lab.
//
// The package includes:
//   - PancakeEditor: Applies a pancake-level change to a pancake owned by an order
//
// An Order exclusively owns its pancakes, so a change to a pancake is only
// persisted by replacing it inside a new revision of the order.
package services
