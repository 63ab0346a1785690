package collections

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLinkedList(t *testing.T) {
	l := NewLinkedList[int]()
	for i := 0; i < 8; i++ {
		l.Add(i)
	}
	require.Equal(t, 8, l.Size())
	require.Nil(t, l.Remove(2))
	require.Equal(t, false, l.Contains(2))
	require.Equal(t, true, l.Contains(3))
	require.Equal(t, 7, l.Size())
	if diff := cmp.Diff([]int{0, 1, 3, 4, 5, 6, 7}, slices.Collect(l.Traverse())); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "[0 1 3 4 5 6 7]", l.String())
}

func TestLinkedListRemove(t *testing.T) {
	l := NewLinkedList[string]()
	l.Add("a")
	l.Add("b")
	l.Add("a")
	l.Add("c")
	require.Equal(t, ErrValueNotExisted, l.Remove("x"))
	// head, first match only
	require.Nil(t, l.Remove("a"))
	require.Equal(t, []string{"b", "a", "c"}, slices.Collect(l.Traverse()))
	// tail, then append after it
	require.Nil(t, l.Remove("c"))
	l.Add("d")
	require.Equal(t, []string{"b", "a", "d"}, slices.Collect(l.Traverse()))
	require.Nil(t, l.Remove("b"))
	require.Nil(t, l.Remove("a"))
	require.Nil(t, l.Remove("d"))
	require.Equal(t, 0, l.Size())
	require.Empty(t, slices.Collect(l.Traverse()))
	l.Add("e")
	require.Equal(t, []string{"e"}, slices.Collect(l.Traverse()))
}

func TestLinkedListTraverseBreak(t *testing.T) {
	l := NewLinkedList[int]()
	for i := 0; i < 5; i++ {
		l.Add(i)
	}
	seen := 0
	for v := range l.Traverse() {
		if v == 2 {
			break
		}
		seen++
	}
	require.Equal(t, 2, seen)
}
