// Package orderrepo keeps order aggregates in process memory.
//
// Orders are immutable, so the repository stores the pointers it is given and
// hands the same pointers back; no copy is needed to keep readers isolated
// from later writes. Every method is safe for concurrent use.
package orderrepo
