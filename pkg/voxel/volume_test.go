package voxel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVolumeGetSetRoundTrip(t *testing.T) {
	vol := NewVolume[bool](0, 0, 0, 2, 2, 2, ConstantBorder[bool]{Value: false})
	vol.Set(1, 1, 1, true)

	require.True(t, vol.Get(1, 1, 1))
	require.False(t, vol.Get(0, 0, 0))
}

func TestVolumeOutOfBoundsReturnsBorder(t *testing.T) {
	vol := NewVolume[int](0, 0, 0, 1, 1, 1, ConstantBorder[int]{Value: -1})

	require.Equal(t, -1, vol.Get(-1, 0, 0))
	require.Equal(t, -1, vol.Get(5, 5, 5))
}

func TestSamplerPeekMatchesDirectGet(t *testing.T) {
	vol := NewVolume[int](0, 0, 0, 3, 3, 3, ConstantBorder[int]{Value: 0})
	vol.Set(2, 1, 1, 7)

	s := vol.NewSampler()
	s.SetPosition(1, 1, 1)

	require.Equal(t, 7, s.Peek(1, 0, 0))
	require.Equal(t, vol.Get(1, 1, 1), s.GetVoxel())

	s.MovePositiveX()
	require.Equal(t, 7, s.GetVoxel())
}
