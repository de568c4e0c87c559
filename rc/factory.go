package rc

import "github.com/jpare/slabrc/driver"

// Factory creates reference-counted cells backed by a single Driver,
// sharing classes across every T it has created a cell for.
type Factory struct {
	drv *driver.Driver
}

// NewFactory creates a Factory backed by a fresh Driver configured with
// opts.
func NewFactory(opts ...driver.Option) *Factory {
	return &Factory{drv: driver.New(opts...)}
}

// Close releases the Factory's Driver. Cells created by this Factory
// must not be used, cloned, or dropped after Close.
func (f *Factory) Close() {
	f.drv.Close()
}

// Create allocates a cell for T, zero-initializes its payload, and runs
// init (if non-nil) against it before returning a handle with a refcount
// of one, plus one for each handle init itself obtained through
// HandleFromThis.
func Create[T any](f *Factory, init func(*T)) (Rc[T], error) {
	return CreateErr[T](f, func(p *T) error {
		if init != nil {
			init(p)
		}
		return nil
	})
}

// CreateErr is like Create, but init may fail. If it does, the cell is
// deallocated before CreateErr returns the error; the refcount is never
// observed to be nonzero in that case.
func CreateErr[T any](f *Factory, init func(*T) error) (Rc[T], error) {
	id, err := driver.ClassFor[rawCell[T]](f.drv)
	if err != nil {
		return Rc[T]{}, err
	}

	ptr := f.drv.Allocate(id)
	cell := (*rawCell[T])(ptr)
	*cell = rawCell[T]{}
	cell.driverHandle = f.drv.Handle()
	cell.class = id

	if init != nil {
		if err := init(&cell.payload); err != nil {
			f.drv.Deallocate(ptr, id)
			return Rc[T]{}, err
		}
	}
	cell.counter++

	return Rc[T]{hdr: &cell.cellHeader, body: &cell.payload}, nil
}

// ReserveCapacity ensures the Factory's Driver has at least n cells of
// T's class immediately available, so the next n calls to Create[T]
// (interleaved with any other type sharing that class) do not need to
// grow a new slab block.
func ReserveCapacity[T any](f *Factory, n int) error {
	if n <= 0 {
		return ErrInvalidCapacity
	}
	id, err := driver.ClassFor[rawCell[T]](f.drv)
	if err != nil {
		return err
	}
	f.drv.Reserve(id, n)
	return nil
}

// CapacityHint pairs a type with a requested initial capacity, for use
// with NewFactoryWithCapacity. The type itself is only captured at the
// call site through Hint[T]; resolving it against a Driver is deferred
// until the Factory exists.
type CapacityHint struct {
	n       int
	resolve func(*driver.Driver) (driver.ClassID, error)
}

// Hint declares that T should contribute n to its resolved class's
// reserved capacity when passed to NewFactoryWithCapacity.
func Hint[T any](n int) CapacityHint {
	return CapacityHint{
		n: n,
		resolve: func(d *driver.Driver) (driver.ClassID, error) {
			return driver.ClassFor[rawCell[T]](d)
		},
	}
}

// NewFactoryWithCapacity creates a Factory backed by a fresh Driver, then
// honors every hint in hints. Hints are aggregated by resolved ClassID
// before reserving — since several types can share a class, two hints
// that land on the same class combine into a single driver.Reserve call
// for their total, rather than each only guaranteeing its own n.
func NewFactoryWithCapacity(hints []CapacityHint, opts ...driver.Option) (*Factory, error) {
	f := NewFactory(opts...)

	totals := make(map[driver.ClassID]int, len(hints))
	for _, h := range hints {
		id, err := h.resolve(f.drv)
		if err != nil {
			f.Close()
			return nil, err
		}
		totals[id] += h.n
	}
	for id, total := range totals {
		f.drv.Reserve(id, total)
	}

	return f, nil
}
