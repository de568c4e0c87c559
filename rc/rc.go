package rc

import (
	"sync/atomic"
	"unsafe"

	"github.com/jpare/slabrc/driver"
)

// Rc is a reference-counted handle to a value of type T. The zero Rc[T]
// is the null handle: Valid reports false and Get must not be called.
type Rc[T any] struct {
	hdr  *cellHeader
	body *T
}

// Valid reports whether r refers to a live, non-sentinel cell.
func (r Rc[T]) Valid() bool {
	return r.hdr != nil && !r.hdr.sentinel
}

// Get returns a pointer to the referenced value. The caller must not
// call Get on an invalid handle.
func (r Rc[T]) Get() *T {
	return r.body
}

// Clone returns a new handle to the same cell, incrementing its
// refcount. Cloning a null or sentinel handle returns an equivalent
// null/sentinel handle without touching any refcount.
func (r Rc[T]) Clone() Rc[T] {
	if r.hdr != nil && !r.hdr.sentinel {
		atomic.AddUint64(&r.hdr.counter, 1)
	}
	return Rc[T]{hdr: r.hdr, body: r.body}
}

// Drop releases r's reference, deallocating the underlying cell back to
// its owning Driver if this was the last live reference. After Drop, r
// is the null handle. Dropping a null or sentinel handle is a no-op.
func (r *Rc[T]) Drop() {
	hdr, class := r.hdr, cellClass(r.hdr)
	r.hdr, r.body = nil, nil
	if hdr == nil || hdr.sentinel {
		return
	}
	if atomic.AddUint64(&hdr.counter, ^uint64(0)) != 0 {
		return
	}
	if drv := driver.ResolveHandle(hdr.driverHandle); drv != nil {
		drv.Deallocate(unsafe.Pointer(hdr), class)
	}
}

func cellClass(hdr *cellHeader) driver.ClassID {
	if hdr == nil {
		return driver.InvalidClassID
	}
	return hdr.class
}

// Equal reports whether a and b refer to the same cell (including the
// same sentinel, if either is one). Two null handles are equal.
func Equal[T any](a, b Rc[T]) bool {
	return a.hdr == b.hdr
}

// Hash returns a fingerprint of r's cell identity, suitable for use as a
// hash map key alongside Equal.
func (r Rc[T]) Hash() uint64 {
	return splitmix64(uint64(uintptr(unsafe.Pointer(r.hdr))))
}

// Based is implemented by a derived type that embeds its base type B as
// its first field, enabling Upcast to share a refcount between an
// Rc[Derived] and an Rc[B] view of the same cell.
type Based[B any] interface {
	AsBase() *B
}

// Upcast returns a new, independently-owned Rc[B] view of the same cell
// as r, when T implements Based[B] — typically because T embeds B as its
// first field. Like Clone, it increments the shared refcount; r and the
// result must each be dropped.
func Upcast[B, T any](r Rc[T]) (Rc[B], bool) {
	based, ok := upcastBody[B](r)
	if !ok {
		return Rc[B]{}, false
	}
	if r.hdr != nil && !r.hdr.sentinel {
		atomic.AddUint64(&r.hdr.counter, 1)
	}
	return Rc[B]{hdr: r.hdr, body: based}, true
}

// UpcastMove converts r into an Rc[B] view of the same cell without
// touching the refcount: ownership moves from r to the result, which is
// why r is cleared to the null handle on success. On failure (T does not
// implement Based[B]) r is left untouched.
func UpcastMove[B, T any](r *Rc[T]) (Rc[B], bool) {
	based, ok := upcastBody[B](*r)
	if !ok {
		return Rc[B]{}, false
	}
	hdr := r.hdr
	r.hdr, r.body = nil, nil
	return Rc[B]{hdr: hdr, body: based}, true
}

func upcastBody[B, T any](r Rc[T]) (*B, bool) {
	if r.hdr == nil {
		return nil, false
	}
	based, ok := any(r.body).(Based[B])
	if !ok {
		return nil, false
	}
	return based.AsBase(), true
}
