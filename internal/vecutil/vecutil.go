// Package vecutil holds the small float32 vector helpers (face normals,
// axis alignment, normal-axis counting) that the decimator uses.
package vecutil

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// axisDirections are the six unit vectors along +/-X, +/-Y, +/-Z.
var axisDirections = [6]mgl32.Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// FaceNormal computes the uncorrected (unnormalised) cross-product normal
// of the triangle (v0, v1, v2).
func FaceNormal(v0, v1, v2 mgl32.Vec3) mgl32.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// AlignedToAxis reports whether the unit vector from a to b lies within
// cosineThreshold of one of the six principal axis directions.
func AlignedToAxis(a, b mgl32.Vec3, cosineThreshold float32) bool {
	movement := b.Sub(a)
	if movement.Len() == 0 {
		return false
	}
	movement = movement.Normalize()

	for _, axis := range axisDirections {
		if movement.Dot(axis) > cosineThreshold {
			return true
		}
	}
	return false
}

// DifferentNormalAxes returns how many of the X/Y/Z components of sum
// exceed a small epsilon in absolute value. For a vertex's accumulated
// face normals this distinguishes planar (1), edge (2) and corner (3)
// neighbourhoods.
func DifferentNormalAxes(sum mgl32.Vec3) int {
	const epsilon = 0.001

	count := 0
	if math32.Abs(sum.X()) > epsilon {
		count++
	}
	if math32.Abs(sum.Y()) > epsilon {
		count++
	}
	if math32.Abs(sum.Z()) > epsilon {
		count++
	}
	return count
}
