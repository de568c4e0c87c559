package rc

import "github.com/jpare/slabrc/driver"

// cellHeader is the fixed, type-parameter-independent prefix of every
// cell. Its layout never changes across instantiations of rawCell[T],
// which is what lets Upcast share one cellHeader across two different
// Rc[_] views of the same allocation.
type cellHeader struct {
	counter      uint64
	driverHandle driver.DriverHandle
	class        driver.ClassID
	sentinel     bool
}

// rawCell is the cellHeader followed by the payload, exactly the
// contiguous allocation a Factory hands out for one object.
type rawCell[T any] struct {
	cellHeader
	payload T
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97f4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}
