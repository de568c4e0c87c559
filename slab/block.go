package slab

import (
	"unsafe"

	"github.com/jpare/slabrc/internal/obslog"
)

// Block is a fixed-capacity arena of equally-sized, equally-aligned cells,
// linked to the slab's previous Block.
type Block struct {
	next    *Block
	data    []byte
	base    int
	objSize uintptr
	cells   int
}

// Create allocates a new Block with room for cells objects of objSize bytes,
// each aligned to objAlign, chained in front of next.
func Create(next *Block, objSize, objAlign uintptr, cells int) (*Block, error) {
	if cells <= 0 {
		return nil, ErrZeroCells
	}
	if objSize == 0 {
		objSize = 1
	}
	if objAlign == 0 {
		objAlign = 1
	}
	// Round the cell stride up to a multiple of objAlign so that every
	// cell, not only the first, starts on an objAlign boundary.
	objSize = (objSize + objAlign - 1) &^ (objAlign - 1)

	// Over-allocate by objAlign-1 bytes of slack so the usable region can
	// start at an objAlign-aligned address, matching the over-aligned-new
	// fallback for types whose alignment exceeds the slice's guarantee.
	slack := int(objAlign) - 1
	data := make([]byte, cells*int(objSize)+slack)
	base := alignOffset(data, objAlign)

	obslog.Debug("slab grown", "cells", cells, "objSize", objSize, "objAlign", objAlign, "bytes", len(data))

	return &Block{
		next:    next,
		data:    data,
		base:    base,
		objSize: objSize,
		cells:   cells,
	}, nil
}

func alignOffset(data []byte, align uintptr) int {
	if len(data) == 0 || align <= 1 {
		return 0
	}
	p := uintptr(unsafe.Pointer(&data[0]))
	aligned := (p + align - 1) &^ (align - 1)
	return int(aligned - p)
}

// Cell returns a pointer to the index'th cell. The caller is responsible
// for keeping index within [0, Cap()); Cell does not bounds-check.
func (b *Block) Cell(index int) unsafe.Pointer {
	off := b.base + index*int(b.objSize)
	return unsafe.Pointer(&b.data[off])
}

// Next returns the previous Block in the slab chain, or nil if this is
// the first Block created.
func (b *Block) Next() *Block { return b.next }

// SetNext rewrites the chain pointer.
func (b *Block) SetNext(next *Block) { b.next = next }

// Cap returns the number of cells this Block holds.
func (b *Block) Cap() int { return b.cells }
