// Package driver provides Driver, an allocator that classifies arbitrary
// pointer-free Go types into shared size/alignment classes and serves
// allocations for all of them from class-specific slab chains.
//
// # Overview
//
// Unlike package pool's Pool[T], which is specialized to one type, a
// Driver is shared across many unrelated types. Two types that normalize
// to the same cell size and a compatible alignment are classified into
// the same ClassID and draw from the same slab chain — the footprint
// sharing that lets a handful of size classes serve an open-ended set of
// payload types.
//
// # GC safety
//
// Because a class's slab may be reinterpreted as any of several unrelated
// types, the Go garbage collector cannot be given precise pointer layout
// information for it. ClassFor therefore rejects any T containing a
// pointer, interface, slice, map, channel, func, or string — see
// package rc and package alloctrait, both built on Driver, for the
// payload types this restricts them to.
//
// # Driver handles
//
// Handle/ResolveHandle let a caller store a reference to a Driver inside
// raw slab memory without storing an actual *Driver there: a
// DriverHandle is a plain int32, safe to embed in a pointer-free struct,
// resolved back to a *Driver through a process-wide registry. Package rc
// uses this to let a dropped Rc find its way back to the Driver that
// allocated it.
//
// # Thread Safety
//
// Driver instances are not thread-safe. Callers must synchronize access
// externally.
package driver
