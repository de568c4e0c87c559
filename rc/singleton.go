package rc

import (
	"sync/atomic"

	"github.com/jpare/slabrc/driver"
)

// noCopy causes `go vet`'s copylocks check to flag accidental copies of
// any struct that embeds it by value, the same trick sync.Mutex relies
// on for the same purpose.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Singleton owns a single value of type T outside of any Driver. Views
// obtained from it behave like ordinary Rc[T] handles, but dropping the
// last one never deallocates anything — the Singleton's owner controls
// the value's lifetime directly, by keeping or discarding the
// *Singleton[T] itself.
type Singleton[T any] struct {
	_    noCopy
	cell rawCell[T]
}

// NewSingleton creates a Singleton holding value.
func NewSingleton[T any](value T) *Singleton[T] {
	s := &Singleton[T]{}
	s.cell.counter = 1
	s.cell.class = driver.InvalidClassID
	s.cell.payload = value
	return s
}

// View returns a new Rc[T] handle onto s's value, incrementing its
// refcount like Clone.
func (s *Singleton[T]) View() Rc[T] {
	atomic.AddUint64(&s.cell.counter, 1)
	return Rc[T]{hdr: &s.cell.cellHeader, body: &s.cell.payload}
}

// Value returns a pointer to the owned value directly, bypassing Rc.
func (s *Singleton[T]) Value() *T {
	return &s.cell.payload
}
