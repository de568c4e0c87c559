// Package rc provides Rc, a reference-counted handle to a value allocated
// through a shared driver.Driver, plus Factory and Singleton, the two
// ways to bring an Rc into existence.
//
// # Overview
//
// A value created through Create lives in one contiguous
// allocation alongside its own refcount and class metadata. Cloning an
// Rc increments that count; dropping the last Rc deallocates the cell
// back to the Driver it came from. A Singleton is the non-driver-backed
// counterpart: a value with an always-nonzero count that is never
// returned to any allocator, owned directly by its creator.
//
// # Cell layout
//
// Every cell is a cellHeader (refcount, owning driver handle, class id,
// sentinel flag — none of which depend on the payload type) immediately
// followed by the payload. Rc[T] holds two pointers: hdr, always
// pointing at the start of the cell, and body, pointing at the live
// payload (or, after Upcast, at an embedded base sub-object of it).
// Keeping hdr's type independent of T is what lets Upcast share a
// refcount across two different Rc[_] instantiations without
// reinterpreting memory whose layout depends on a type parameter.
//
// # Thread safety
//
// A cell's refcount is adjusted with sync/atomic, so Clone and Drop are
// safe to call concurrently on handles to the *same* cell from different
// goroutines. The Driver and Factory backing a cell are not thread-safe
// themselves; concurrent Create/Reserve calls against one Factory still
// need external synchronization.
package rc
