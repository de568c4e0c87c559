package rc

// emptySentinelHeader and tombstoneSentinelHeader are shared by every
// Rc[T] instantiation's EmptyKey/TombstoneKey, regardless of T, because
// cellHeader carries no type parameter. Identity (and therefore Equal)
// is anchored entirely on these two addresses.
var (
	emptySentinelHeader     = cellHeader{sentinel: true}
	tombstoneSentinelHeader = cellHeader{sentinel: true}
)

// EmptyKey returns a handle distinct from any live or null Rc[T], and
// from TombstoneKey[T](), suitable as a hash map's "no entry" sentinel.
// It is always invalid (Valid reports false) and never needs dropping.
func EmptyKey[T any]() Rc[T] {
	var dummy T
	return Rc[T]{hdr: &emptySentinelHeader, body: &dummy}
}

// TombstoneKey returns a handle distinct from any live or null Rc[T],
// and from EmptyKey[T](), suitable as a hash map's "deleted entry"
// sentinel. It is always invalid (Valid reports false) and never needs
// dropping.
func TombstoneKey[T any]() Rc[T] {
	var dummy T
	return Rc[T]{hdr: &tombstoneSentinelHeader, body: &dummy}
}
