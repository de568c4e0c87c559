package rc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleton_ViewsShareValueAndSurviveIndependentDrops(t *testing.T) {
	s := NewSingleton(42)

	a := s.View()
	b := s.View()
	require.True(t, Equal(a, b))
	require.Equal(t, 42, *a.Get())

	a.Drop()
	require.False(t, a.Valid())
	// The Singleton itself, and b, remain usable: dropping a view never
	// deallocates a Singleton's storage.
	require.True(t, b.Valid())
	require.Equal(t, 42, *s.Value())

	b.Drop()
	require.Equal(t, 42, *s.Value())
}

func TestSingleton_ValueBypassesRc(t *testing.T) {
	s := NewSingleton("hello")
	require.Equal(t, "hello", *s.Value())

	*s.Value() = "updated"
	v := s.View()
	require.Equal(t, "updated", *v.Get())
	v.Drop()
}
