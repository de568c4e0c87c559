package rc

import (
	"sync/atomic"
	"unsafe"
)

// HandleFromThis reconstructs an Rc[T] sharing the refcount of the cell
// self lives in, given only a *T. self must point at the payload of a
// cell previously produced by Create[T] or NewSingleton[T] — passing any
// other *T (a stack value, a sub-object reached through Upcast, a value
// from a different package) is undefined.
func HandleFromThis[T any](self *T) Rc[T] {
	cell := (*rawCell[T])(unsafe.Pointer(
		uintptr(unsafe.Pointer(self)) - unsafe.Offsetof(rawCell[T]{}.payload),
	))
	atomic.AddUint64(&cell.counter, 1)
	return Rc[T]{hdr: &cell.cellHeader, body: &cell.payload}
}

// EnableHandleFromThis gives T a HandleFromThis method when embedded as
// a field of T, working around Go methods being unable to add their own
// type parameters beyond the receiver's. Embed it like:
//
//	type Node struct {
//	    rc.EnableHandleFromThis[Node]
//	    // ...
//	}
//
//	func (n *Node) Self() rc.Rc[Node] { return n.HandleFromThis(n) }
type EnableHandleFromThis[T any] struct{}

// HandleFromThis delegates to the package-level HandleFromThis[T].
func (EnableHandleFromThis[T]) HandleFromThis(self *T) Rc[T] {
	return HandleFromThis[T](self)
}
