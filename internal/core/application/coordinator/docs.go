// Package coordinator serializes every change to the shared order collection
// and provides consistent reads of it.
//
// The Coordinator is the only component of the pancake lab with shared mutable
// state: one reader/writer lock scoped to the whole collection. Every write
// operation runs as
//
//	lock -> load -> pure domain transition -> save -> unlock -> publish event
//
// so a write is atomic with respect to every other operation, and a reader
// never observes an order whose pancakes reflect one write while its status
// reflects another.
//
// The lock is pluggable (see Lock). GlobalLock is the production strategy;
// NopLock suits single-goroutine tests.
//
// Failures keep their kind (see errs.KindOf). The coordinator adds exactly one
// failure of its own: an Unavailable error when the lock cannot be acquired
// before the context is done.
package coordinator
