package rc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinels_AreInvalidAndDistinct(t *testing.T) {
	empty := EmptyKey[int64]()
	tomb := TombstoneKey[int64]()
	var null Rc[int64]

	require.False(t, empty.Valid())
	require.False(t, tomb.Valid())
	require.False(t, null.Valid())

	require.False(t, Equal(empty, tomb))
	require.False(t, Equal(empty, null))
	require.False(t, Equal(tomb, null))
}

func TestSentinels_StableIdentityAcrossCalls(t *testing.T) {
	require.True(t, Equal(EmptyKey[int64](), EmptyKey[int64]()))
	require.True(t, Equal(TombstoneKey[string](), TombstoneKey[string]()))
}

func TestSentinels_DropIsNoOp(t *testing.T) {
	e := EmptyKey[int64]()
	e.Drop()
	require.False(t, e.Valid())
}
