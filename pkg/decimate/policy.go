// Package decimate implements constrained edge-collapse mesh
// simplification for meshes produced by pkg/cubic (or any mesh whose
// vertices carry a position and a comparable material tag).
package decimate

import "github.com/go-gl/mathgl/mgl32"

// EdgeFlags marks a vertex's relationship to material and region
// boundaries. Bit 0 is the material-edge bit; the remaining bits are
// geometric edge flags whose subset ordering (face < edge < corner)
// governs which collapses preserve edge character.
type EdgeFlags uint8

const (
	FlagMaterialEdge EdgeFlags = 1 << 0
	FlagRegionFace   EdgeFlags = 1 << 1
	FlagRegionEdge   EdgeFlags = 1 << 2
	FlagRegionCorner EdgeFlags = 1 << 3
)

func (f EdgeFlags) onMaterialEdge() bool { return f&FlagMaterialEdge != 0 }

func (f EdgeFlags) geometric() EdgeFlags { return f &^ FlagMaterialEdge }

// isSubset reports whether every geometric bit set in a is also set in
// b, ignoring the material-edge bit.
func isSubset(a, b EdgeFlags) bool {
	return a.geometric()&^b.geometric() == 0
}

// VertexPolicy answers the questions canCollapse needs about a mesh's
// vertex type. Normal, Flags and RegionContains report ok=false when the
// caller's vertex type doesn't track that information; Decimate falls
// back to the heuristic boundary substitutes described for
// position+material-only meshes when either is missing.
type VertexPolicy[VertexT any, M comparable] interface {
	Position(v VertexT) mgl32.Vec3
	Material(v VertexT) M
	Normal(v VertexT) (normal mgl32.Vec3, ok bool)
	Flags(v VertexT) (flags EdgeFlags, ok bool)
	RegionContains(v VertexT) (inside bool, ok bool)
}

// PositionMaterial is a VertexPolicy for meshes that carry only a
// position and a material: the common case for meshes fresh out of
// pkg/cubic before any edge annotation pass. Decimate falls back to the
// heuristic noOfDifferentNormals/duplicate checks for vertices answered
// by this policy; it reports no region, so the region check is skipped.
type PositionMaterial[VertexT any, M comparable] struct {
	PositionFunc func(VertexT) mgl32.Vec3
	MaterialFunc func(VertexT) M
}

func (p PositionMaterial[VertexT, M]) Position(v VertexT) mgl32.Vec3 { return p.PositionFunc(v) }
func (p PositionMaterial[VertexT, M]) Material(v VertexT) M          { return p.MaterialFunc(v) }
func (p PositionMaterial[VertexT, M]) Normal(v VertexT) (mgl32.Vec3, bool) {
	return mgl32.Vec3{}, false
}
func (p PositionMaterial[VertexT, M]) Flags(v VertexT) (EdgeFlags, bool) { return 0, false }
func (p PositionMaterial[VertexT, M]) RegionContains(v VertexT) (bool, bool) {
	return false, false
}

// PositionMaterialNormal is a VertexPolicy for meshes annotated with
// normals and geometric edge flags (typically by a prior pass that
// stitches several extracted regions together). With both fields
// present, Decimate uses the flag-based material-edge and region-edge
// checks instead of the position/material-only heuristics.
type PositionMaterialNormal[VertexT any, M comparable] struct {
	PositionFunc func(VertexT) mgl32.Vec3
	MaterialFunc func(VertexT) M
	NormalFunc   func(VertexT) mgl32.Vec3
	FlagsFunc    func(VertexT) EdgeFlags
}

func (p PositionMaterialNormal[VertexT, M]) Position(v VertexT) mgl32.Vec3 { return p.PositionFunc(v) }
func (p PositionMaterialNormal[VertexT, M]) Material(v VertexT) M          { return p.MaterialFunc(v) }
func (p PositionMaterialNormal[VertexT, M]) Normal(v VertexT) (mgl32.Vec3, bool) {
	return p.NormalFunc(v), true
}
func (p PositionMaterialNormal[VertexT, M]) Flags(v VertexT) (EdgeFlags, bool) {
	return p.FlagsFunc(v), true
}
func (p PositionMaterialNormal[VertexT, M]) RegionContains(v VertexT) (bool, bool) {
	return false, false
}
