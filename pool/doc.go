// Package pool provides Pool, a generic free-list allocator for a single
// Go type T.
//
// # Overview
//
// A Pool[T] hands out *T values from internally-managed slab arrays,
// reusing freed values before growing. It is the single-type counterpart
// to package driver's multi-shape Driver: where Driver classifies and
// shares slabs across unrelated pointer-free types, Pool is specialized
// to exactly one T and therefore stays GC-safe for any T, including ones
// holding pointers, strings, or interfaces.
//
// # Usage
//
//	p := pool.New[widget]()
//	w := p.Get()
//	defer p.Put(w)
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally.
package pool
