package rc

import "errors"

// ErrInvalidCapacity is returned by ReserveCapacity for a non-positive n.
var ErrInvalidCapacity = errors.New("rc: reserve capacity must be positive")
