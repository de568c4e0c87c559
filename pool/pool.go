package pool

import (
	"unsafe"

	"github.com/jpare/slabrc/internal/obslog"
)

const defaultSlabCells = 64

// Allocator is the trait-conforming shape shared with alloctrait.Allocator,
// so generic containers can be parameterized over either.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(s []T)
}

type config struct {
	slabCells int
}

// Option configures a Pool at construction time.
type Option func(*config)

// WithSlabCells sets the number of cells each internally-grown slab holds.
// Non-positive values are ignored.
func WithSlabCells(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.slabCells = n
		}
	}
}

// Pool is a free-list allocator specialized to a single type T. Unlike
// driver.Driver, Pool backs its slabs with a real []T, so T may be any
// Go type, including ones holding pointers, strings, or interfaces.
type Pool[T any] struct {
	slabCells int
	slabs     [][]T
	free      []*T
	pos       int
}

// New creates a Pool for T with the given options applied.
func New[T any](opts ...Option) *Pool[T] {
	cfg := config{slabCells: defaultSlabCells}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pool[T]{slabCells: cfg.slabCells}
}

func (p *Pool[T]) grow() {
	slab := make([]T, p.slabCells)
	p.slabs = append(p.slabs, slab)
	p.pos = 0
	obslog.Debug("pool grown", "cells", p.slabCells, "slabs", len(p.slabs))
}

// Get returns a pointer to a zeroed T, reusing the most recently freed
// cell if one is available, bump-allocating from the current slab
// otherwise, and growing the pool when that slab is exhausted.
func (p *Pool[T]) Get() *T {
	if n := len(p.free); n > 0 {
		x := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		var zero T
		*x = zero
		return x
	}
	if len(p.slabs) == 0 || p.pos >= p.slabCells {
		p.grow()
	}
	x := &p.slabs[len(p.slabs)-1][p.pos]
	p.pos++
	return x
}

// Put returns x to the pool for reuse. x must have come from this Pool's
// Get or Allocate(1); passing any other pointer is undefined.
func (p *Pool[T]) Put(x *T) {
	p.free = append(p.free, x)
}

// Allocate satisfies Allocator[T]. A request for exactly one element is
// served from the pool; any other count bypasses the pool and is served
// directly from the Go heap, matching the array fallback of the type this
// pool is modeled on.
func (p *Pool[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	if n != 1 {
		return make([]T, n)
	}
	return unsafe.Slice(p.Get(), 1)
}

// Deallocate satisfies Allocator[T]. A single-element slice obtained from
// Allocate(1) is returned to the pool; any other length is left for the
// garbage collector, since it was never pool-backed.
func (p *Pool[T]) Deallocate(s []T) {
	if len(s) != 1 {
		return
	}
	p.Put(&s[0])
}

// Equal reports whether other is logically interchangeable with p. Every
// Pool[T] is interchangeable with every other Pool[T], so Equal always
// returns true.
func (p *Pool[T]) Equal(other *Pool[T]) bool {
	return true
}
