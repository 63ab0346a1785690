package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloorMod(t *testing.T) {
	require.Equal(t, 3, FloorMod(13, 5))
	require.Equal(t, 2, FloorMod(-13, 5))
	require.Equal(t, 0, FloorMod(-10, 5))
	require.Equal(t, int32(99), FloorMod(int32(-1), 100))
	require.Equal(t, int64(0), FloorMod(int64(0), 7))
}
