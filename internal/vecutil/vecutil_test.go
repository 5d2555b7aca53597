package vecutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestAlignedToAxis(t *testing.T) {
	require.True(t, AlignedToAxis(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{5, 0, 0}, 0.999))
	require.False(t, AlignedToAxis(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 0}, 0.999))
}

func TestDifferentNormalAxesPlanar(t *testing.T) {
	require.Equal(t, 1, DifferentNormalAxes(mgl32.Vec3{0, 4, 0}))
}

func TestDifferentNormalAxesCorner(t *testing.T) {
	require.Equal(t, 3, DifferentNormalAxes(mgl32.Vec3{2, 2, 2}))
}
