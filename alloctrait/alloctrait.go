package alloctrait

import (
	"unsafe"

	"github.com/jpare/slabrc/driver"
)

// Allocator is a trait-conforming facade over a shared driver.Driver,
// satisfying the same Allocate/Deallocate shape as pool.Pool[T].
type Allocator[T any] struct {
	drv *driver.Driver
	id  driver.ClassID
}

// New creates an Allocator[T] bound to drv. Classification of T is
// deferred until the first single-element Allocate or Deallocate call.
func New[T any](drv *driver.Driver) Allocator[T] {
	return Allocator[T]{drv: drv, id: driver.InvalidClassID}
}

// Init resolves T's ClassID against the bound Driver if it has not been
// resolved yet. Allocate and Deallocate call this automatically; callers
// needing an explicit error return (instead of a panic on first use) can
// call it up front.
func (a *Allocator[T]) Init() error {
	if a.id != driver.InvalidClassID {
		return nil
	}
	id, err := driver.ClassFor[T](a.drv)
	if err != nil {
		return err
	}
	a.id = id
	return nil
}

// Allocate satisfies the Allocator[T] trait shape. Any count other than
// one is served directly from the Go heap and never touches the Driver.
// A single-element request panics if T cannot be classified by the bound
// Driver (see driver.ErrPointerPayload) — a contract violation that,
// unlike a driver-level API misuse, this method has no error channel to
// report through.
func (a *Allocator[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	if n != 1 {
		return make([]T, n)
	}
	if err := a.Init(); err != nil {
		panic(err)
	}
	ptr := a.drv.Allocate(a.id)
	return unsafe.Slice((*T)(ptr), 1)
}

// Deallocate satisfies the Allocator[T] trait shape.
func (a *Allocator[T]) Deallocate(s []T) {
	if len(s) != 1 {
		return
	}
	if err := a.Init(); err != nil {
		panic(err)
	}
	a.drv.Deallocate(unsafe.Pointer(&s[0]), a.id)
}

// Equal reports whether a and other share the same Driver and ClassID.
func (a Allocator[T]) Equal(other Allocator[T]) bool {
	return a.drv == other.drv && a.id == other.id
}

// Rebind produces an Allocator[U] sharing a's Driver. Resolution of U's
// ClassID is deferred, as in New.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return New[U](a.drv)
}
