package pool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct {
	id  int
	tag string
}

func TestPool_GetZeroesReusedCells(t *testing.T) {
	p := New[widget](WithSlabCells(2))

	w := p.Get()
	w.id = 42
	w.tag = "x"
	p.Put(w)

	w2 := p.Get()
	require.Equal(t, 0, w2.id)
	require.Equal(t, "", w2.tag)
}

func TestPool_ReusesFreedCellsLIFO(t *testing.T) {
	p := New[widget](WithSlabCells(8))

	a := p.Get()
	b := p.Get()
	p.Put(a)
	p.Put(b)

	// LIFO: the most recently freed cell (b) comes back first.
	got1 := p.Get()
	require.Same(t, b, got1)
	got2 := p.Get()
	require.Same(t, a, got2)
}

func TestPool_GrowsAcrossSlabBoundary(t *testing.T) {
	p := New[widget](WithSlabCells(2))

	ptrs := make([]*widget, 0, 5)
	for i := 0; i < 5; i++ {
		ptrs = append(ptrs, p.Get())
	}
	require.Len(t, p.slabs, 3) // ceil(5/2) slabs grown on demand

	seen := make(map[*widget]bool)
	for _, x := range ptrs {
		require.False(t, seen[x])
		seen[x] = true
	}
}

func TestPool_AllocateSingleComesFromPool(t *testing.T) {
	p := New[widget](WithSlabCells(4))

	s := p.Allocate(1)
	require.Len(t, s, 1)
	require.Empty(t, p.free)

	p.Deallocate(s)
	require.Len(t, p.free, 1)
}

func TestPool_AllocateArrayBypassesPool(t *testing.T) {
	p := New[widget](WithSlabCells(4))

	s := p.Allocate(3)
	require.Len(t, s, 3)
	require.Empty(t, p.slabs)

	p.Deallocate(s)
	require.Empty(t, p.free)
}

func TestPool_AllocateZeroReturnsNil(t *testing.T) {
	p := New[widget]()
	require.Nil(t, p.Allocate(0))
}

func TestPool_EqualAlwaysTrue(t *testing.T) {
	a := New[widget]()
	b := New[widget]()
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(a))
	require.True(t, a.Equal(nil))
}

func TestPool_FuzzRandomGetPut_NoAliasing(t *testing.T) {
	p := New[widget](WithSlabCells(16))
	rng := rand.New(rand.NewSource(42))

	live := make(map[*widget]int)
	next := 0

	for step := 0; step < 2000; step++ {
		if len(live) == 0 || rng.Intn(2) == 0 {
			w := p.Get()
			if _, dup := live[w]; dup {
				t.Fatalf("step %d: Get returned a cell already live", step)
			}
			next++
			w.id = next
			live[w] = next
		} else {
			for w := range live {
				require.Equal(t, live[w], w.id)
				delete(live, w)
				p.Put(w)
				break
			}
		}
	}
}
