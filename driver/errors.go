package driver

import "errors"

// ErrPointerPayload is returned by ClassFor when T contains a pointer,
// interface, slice, map, channel, func, or string. Such a type cannot be
// safely stored in a class shared by other types, because the garbage
// collector is never given precise layout information for shared slabs.
var ErrPointerPayload = errors.New("driver: payload type must not contain pointers")
