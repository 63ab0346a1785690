package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSet(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewHashSet(func(v Mock) int {
		return StringHash(v.A) ^ v.B
	})
	require.Nil(t, s.Add(Mock{
		A: "aa",
		B: 22,
	}))
	require.Equal(t, ErrValueExisted, s.Add(Mock{
		A: "aa",
		B: 22,
	}))
	require.Nil(t, s.Add(Mock{
		A: "bb",
		B: 55,
	}))
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains(Mock{
		A: "aa",
		B: 22,
	}))
	require.Equal(t, true, s.Contains(Mock{
		A: "bb",
		B: 55,
	}))
	require.Equal(t, false, s.Contains(Mock{
		A: "aa",
	}))
	require.ElementsMatch(t, []Mock{{A: "aa", B: 22}, {A: "bb", B: 55}}, s.Entries())
}

func TestHashSetGrowth(t *testing.T) {
	s := NewHashSet(IntegerHash[int], WithCapacity(2))
	for i := -50; i < 50; i++ {
		require.Nil(t, s.Add(i))
	}
	for i := -50; i < 50; i++ {
		require.Equal(t, ErrValueExisted, s.Add(i))
	}
	require.Equal(t, 100, s.Size())
	require.Len(t, s.Entries(), 100)
}
