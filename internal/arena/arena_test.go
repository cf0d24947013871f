package arena_test

import (
	"maps"
	"testing"

	"github.com/eak1mov/go-libplane/internal/arena"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInsertGet(t *testing.T) {
	var a arena.Arena[string]
	k1 := a.Insert("foo")
	k2 := a.Insert("bar")

	require.False(t, k1.IsZero())
	require.NotEqual(t, k1, k2)
	require.Equal(t, 2, a.Len())

	v, ok := a.Get(k1)
	require.True(t, ok)
	require.Equal(t, "foo", *v)
	require.Equal(t, "bar", *a.At(k2))
}

func TestRemoveInvalidatesKey(t *testing.T) {
	var a arena.Arena[int]
	k := a.Insert(42)

	v, ok := a.Remove(k)
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.False(t, a.Contains(k))

	_, ok = a.Get(k)
	require.False(t, ok)
	_, ok = a.Remove(k)
	require.False(t, ok, "second remove must fail")

	// the slot is reused under a new generation
	k2 := a.Insert(7)
	require.NotEqual(t, k, k2)
	require.False(t, a.Contains(k))
	require.True(t, a.Contains(k2))
	require.Equal(t, 1, a.Len())
}

func TestZeroKey(t *testing.T) {
	var a arena.Arena[int]
	a.Insert(1)

	var zero arena.Key
	require.True(t, zero.IsZero())
	require.False(t, a.Contains(zero))
	require.Panics(t, func() { a.At(zero) })
}

func TestAll(t *testing.T) {
	var a arena.Arena[int]
	want := map[arena.Key]int{}
	keys := make([]arena.Key, 0)
	for i := range 10 {
		k := a.Insert(i)
		keys = append(keys, k)
		want[k] = i
	}
	for i := 0; i < len(keys); i += 2 {
		a.Remove(keys[i])
		delete(want, keys[i])
	}

	got := map[arena.Key]int{}
	for k, v := range a.All() {
		got[k] = *v
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(arena.Key{})); diff != "" {
		t.Errorf("All() mismatch (-want+got):\n%v", diff)
	}
	require.Equal(t, len(want), a.Len())
	require.Equal(t, len(want), len(maps.Collect(a.All())))
}
