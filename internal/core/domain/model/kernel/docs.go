// Package kernel provides core domain primitives shared by the pancake lab model.
// It implements the building blocks that the order and pancake aggregates are
// assembled from.
//
// The package includes:
//   - UUID: A value object for order and pancake identifiers
//   - DeliveryAddress: A value object naming the building and room an order goes to
//
// These primitives enforce their own invariants at construction and are immutable
// afterwards, so they can be shared freely between goroutines and between
// successive revisions of an aggregate.
package kernel
