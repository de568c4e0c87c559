package slab

import "errors"

// ErrZeroCells is returned by Create when asked for a block with no cells.
var ErrZeroCells = errors.New("slab: cell count must be positive")
