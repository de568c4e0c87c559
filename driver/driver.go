package driver

import (
	"reflect"
	"unsafe"

	"github.com/jpare/slabrc/internal/obslog"
	"github.com/jpare/slabrc/slab"
)

// ClassID names one of a Driver's footprint classes.
type ClassID int32

// InvalidClassID is returned alongside a non-nil error, and is the value
// an alloctrait.Allocator starts with before its first allocation.
const InvalidClassID ClassID = -1

const defaultBlockCapacity = 64

type config struct {
	blockCapacity int
}

// Option configures a Driver at construction time.
type Option func(*config)

// WithBlockCapacity sets the number of cells each newly grown slab block
// holds. Non-positive values are ignored.
func WithBlockCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.blockCapacity = n
		}
	}
}

type classInfo struct {
	objSize  uintptr
	objAlign uintptr
	root     *slab.Block
	pos      int
	freeList unsafe.Pointer
}

// Driver classifies pointer-free types into shared size/alignment classes
// and serves Allocate/Deallocate/Reserve against class-specific slab
// chains.
type Driver struct {
	blockCapacity int
	classes       []classInfo
	selfHandle    DriverHandle
}

// DriverHandle is a small process-wide identifier for a Driver, stored in
// place of a *Driver inside raw slab memory (a real pointer there would
// be invisible to the garbage collector). Package rc's cell header
// carries a DriverHandle rather than a *Driver for exactly this reason.
type DriverHandle int32

var (
	driverRegistry   = map[DriverHandle]*Driver{}
	nextDriverHandle DriverHandle
)

// Handle returns a stable DriverHandle for d, assigning one on first use.
func (d *Driver) Handle() DriverHandle {
	if d.selfHandle == 0 {
		nextDriverHandle++
		d.selfHandle = nextDriverHandle
		driverRegistry[d.selfHandle] = d
	}
	return d.selfHandle
}

// ResolveHandle returns the Driver previously assigned h by Handle, or nil
// if h is zero or the Driver has since been Closed.
func ResolveHandle(h DriverHandle) *Driver {
	return driverRegistry[h]
}

// New creates an empty Driver with no classes yet registered.
func New(opts ...Option) *Driver {
	cfg := config{blockCapacity: defaultBlockCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Driver{blockCapacity: cfg.blockCapacity}
}

// ClassFor returns the ClassID that d uses to serve allocations of T,
// registering a new class the first time a given (size, alignment) pair
// is seen. T must not contain a pointer, interface, slice, map, channel,
// func, or string.
func ClassFor[T any](d *Driver) (ClassID, error) {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	if hasPointer(rt) {
		return InvalidClassID, ErrPointerPayload
	}

	size := normalizeSize(unsafe.Sizeof(zero))
	align := uintptr(unsafe.Alignof(zero))
	return d.classify(size, align), nil
}

func normalizeSize(sz uintptr) uintptr {
	const ptrSize = unsafe.Sizeof(uintptr(0))
	if sz < ptrSize {
		sz = ptrSize
	}
	return (sz + 7) &^ 7
}

func hasPointer(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.Map, reflect.Slice, reflect.String:
		return true
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			if hasPointer(rt.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Array:
		return hasPointer(rt.Elem())
	default:
		return false
	}
}

// classify finds the existing class with a matching size and the
// smallest alignment sufficient for align, creating a new class only
// when none fits.
func (d *Driver) classify(size, align uintptr) ClassID {
	best := -1
	for i := range d.classes {
		c := &d.classes[i]
		if c.objSize != size || c.objAlign < align {
			continue
		}
		if best == -1 || c.objAlign < d.classes[best].objAlign {
			best = i
		}
	}
	if best != -1 {
		return ClassID(best)
	}
	d.classes = append(d.classes, classInfo{objSize: size, objAlign: align})
	return ClassID(len(d.classes) - 1)
}

// Allocate returns a cell from id's class, popping the free list if
// non-empty and bump-allocating from the class's current slab otherwise,
// growing a new slab block when the current one is exhausted.
func (d *Driver) Allocate(id ClassID) unsafe.Pointer {
	c := &d.classes[id]
	if c.freeList != nil {
		p := c.freeList
		c.freeList = *(*unsafe.Pointer)(p)
		return p
	}
	if c.root == nil || c.pos >= c.root.Cap() {
		d.growClass(id, c)
	}
	p := c.root.Cell(c.pos)
	c.pos++
	return p
}

func (d *Driver) growClass(id ClassID, c *classInfo) {
	blk, err := slab.Create(c.root, c.objSize, c.objAlign, d.blockCapacity)
	if err != nil {
		panic(err)
	}
	obslog.Debug("driver class grown", "class", int32(id), "cells", d.blockCapacity)
	c.root = blk
	c.pos = 0
}

// Deallocate returns ptr, previously obtained from Allocate(id), to id's
// free list.
func (d *Driver) Deallocate(ptr unsafe.Pointer, id ClassID) {
	c := &d.classes[id]
	pushFree(c, ptr)
}

func pushFree(c *classInfo, ptr unsafe.Pointer) {
	*(*unsafe.Pointer)(ptr) = c.freeList
	c.freeList = ptr
}

func freeListLen(head unsafe.Pointer) int {
	n := 0
	for p := head; p != nil; p = *(*unsafe.Pointer)(p) {
		n++
	}
	return n
}

// Reserve ensures id's class has at least n cells immediately available
// (free list plus remaining bump capacity) without requiring a later
// allocation to grow a new slab. If the class is already short, any cells
// left in its current bump block are folded into the free list and a new
// block sized exactly to the shortfall becomes the class's bump source.
func (d *Driver) Reserve(id ClassID, n int) {
	if n <= 0 {
		return
	}
	c := &d.classes[id]

	bumpRemaining := 0
	if c.root != nil {
		bumpRemaining = c.root.Cap() - c.pos
	}
	have := freeListLen(c.freeList) + bumpRemaining
	if have >= n {
		return
	}
	shortfall := n - have

	if c.root != nil {
		for i := c.root.Cap() - 1; i >= c.pos; i-- {
			pushFree(c, c.root.Cell(i))
		}
	}

	blk, err := slab.Create(c.root, c.objSize, c.objAlign, shortfall)
	if err != nil {
		panic(err)
	}
	obslog.Debug("driver class reserved", "class", int32(id), "requested", n, "shortfall", shortfall)
	c.root = blk
	c.pos = 0
}

// Close releases every class's slab chain and free list. Cells obtained
// from this Driver must not be used after Close.
func (d *Driver) Close() {
	for i := range d.classes {
		d.classes[i].root = nil
		d.classes[i].freeList = nil
	}
	d.classes = nil
	if d.selfHandle != 0 {
		delete(driverRegistry, d.selfHandle)
		d.selfHandle = 0
	}
}

// NumClasses returns the number of classes registered so far.
func (d *Driver) NumClasses() int {
	return len(d.classes)
}
