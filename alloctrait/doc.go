// Package alloctrait adapts a shared driver.Driver into the same
// Allocate(n)/Deallocate(s) shape that package pool's Pool[T] exposes, so
// generic containers can be written once against that shape and backed by
// either.
//
// # Lazy classification
//
// An Allocator[T] does not classify T against its Driver until the first
// single-element Allocate or Deallocate call. This lets callers build a slice of
// Allocator[T] values for types that might never actually be used.
//
// # Rebinding
//
// Rebind produces an Allocator[U] sharing the same Driver as an existing
// Allocator[T]. It always re-resolves U's class lazily; when U and T
// normalize to the same footprint, that resolution lands back on the same
// ClassID the original Allocator used, so no allocation scheme changes
// from the Driver's point of view.
package alloctrait
