// Package slab provides the raw storage primitive shared by the pool and
// driver allocators: a linked, fixed-capacity arena of equally-sized,
// equally-aligned cells.
//
// # Overview
//
// A Block is a contiguous []byte arena holding a fixed number of cells of
// a given object size and alignment, plus a pointer to the next Block in
// a slab chain. Blocks never grow, shrink, or coalesce; a full Block is
// replaced by chaining a new one in front of it.
//
// # Alignment
//
// Create over-allocates by up to objAlign-1 bytes of slack and returns a
// Block whose usable region starts at the first address satisfying
// objAlign. This matches the "over-aligned new" fallback used for types
// whose natural alignment exceeds what a plain byte slice guarantees.
//
// # Thread Safety
//
// Block is not thread-safe. Callers must synchronize access externally.
package slab
