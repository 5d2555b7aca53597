package vxmesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the decoded, renderer-facing vertex form: a float position
// relative to the mesh's Offset, a normal (zero for cubic output; non-cubic extractors
// not specified here may set it), the material payload, and the
// ambient-occlusion term.
type Vertex[V any] struct {
	Position         mgl32.Vec3
	Normal           mgl32.Vec3
	Data             V
	AmbientOcclusion uint8
}

// DecodePosition undoes the cubic extractor's byte encoding: the lattice
// corner sits at encodedPosition - 0.5 in each component.
func DecodePosition(encoded [3]uint8) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(encoded[0]) - 0.5,
		float32(encoded[1]) - 0.5,
		float32(encoded[2]) - 0.5,
	}
}

// DecodeVertex converts an encoded CubicVertex into its decoded form.
func DecodeVertex[V any](v CubicVertex[V]) Vertex[V] {
	return Vertex[V]{
		Position:         DecodePosition(v.EncodedPosition),
		Normal:           mgl32.Vec3{},
		Data:             v.Data,
		AmbientOcclusion: v.AmbientOcclusion,
	}
}
