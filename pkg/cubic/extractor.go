// Package cubic implements the cubic ("blocky", Minecraft/Voxatron style)
// surface extractor: it sweeps a region of a volume and emits an indexed
// triangle mesh on the boundaries between distinguishable voxel classes,
// with a per-vertex ambient-occlusion term and optional coplanar quad
// merging.
//
// A smooth, marching-cubes-like extractor is a natural sibling of this
// package but is intentionally not provided here.
package cubic

import (
	"fmt"
	"time"

	"github.com/alexsaalberg/polyvox/pkg/region"
	"github.com/alexsaalberg/polyvox/pkg/voxel"
	"github.com/alexsaalberg/polyvox/pkg/vxmesh"
)

// maxRegionDimension is the largest region size on any axis that can be
// encoded, since vertex lattice positions are packed one byte per
// component.
const maxRegionDimension = 255

// IsQuadNeededFunc decides whether a quad belongs between voxel a
// (inside) and voxel b (outside, the side the quad's outward normal
// points towards). When it returns true, material is the tag to attach
// to the quad's vertices.
type IsQuadNeededFunc[V comparable] func(a, b V) (needed bool, material V)

// ContributesToAOFunc reports whether a voxel should be treated as an
// occluder when computing ambient occlusion.
type ContributesToAOFunc[V any] func(v V) bool

// Extract sweeps reg within sampler and returns the resulting mesh. The
// region's width, height and depth must each be at most 255 voxels;
// violating this returns ErrRegionTooLarge and produces no output.
func Extract[V comparable](
	sampler voxel.Sampler[V],
	reg region.Region,
	isQuadNeeded IsQuadNeededFunc[V],
	contributesToAO ContributesToAOFunc[V],
	mergeQuads bool,
) (*vxmesh.Mesh[vxmesh.CubicVertex[V]], error) {
	width := reg.WidthInVoxels()
	height := reg.HeightInVoxels()
	depth := reg.DepthInVoxels()

	if width > maxRegionDimension || height > maxRegionDimension || depth > maxRegionDimension {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrRegionTooLarge, width, height, depth)
	}

	start := time.Now()

	mesh := vxmesh.New[vxmesh.CubicVertex[V]]()
	planes := newQuadPlanes(width, height, depth)

	previous := newSliceBuffer[V](width, height)
	current := newSliceBuffer[V](width, height)

	for z := reg.LowerZ; z <= reg.UpperZ; z++ {
		regZ := z - reg.LowerZ

		for y := reg.LowerY; y <= reg.UpperY; y++ {
			regY := y - reg.LowerY

			sampler.SetPosition(reg.LowerX, y, z)

			for x := reg.LowerX; x <= reg.UpperX; x++ {
				regX := x - reg.LowerX

				if err := extractVoxelFaces(sampler, mesh, planes, previous, current, regX, regY, regZ, isQuadNeeded, contributesToAO); err != nil {
					return nil, err
				}

				sampler.MovePositiveX()
			}
		}

		previous, current = current, previous
		current.reset()
	}

	for dir := faceDirection(0); dir < noOfFaces; dir++ {
		for _, list := range planes.lists[dir] {
			if mergeQuads {
				list = mergeQuadList(list, func(idx uint32) cubicVertexLike[V] {
					v := mesh.GetVertex(idx)
					return cubicVertexLike[V]{Data: v.Data, AmbientOcclusion: v.AmbientOcclusion}
				})
			}

			for _, q := range list {
				triangulateQuad(mesh, q)
			}
		}
	}

	mesh.Offset = reg.LowerCorner()
	mesh.RemoveUnusedVertices()
	mesh.LODs = []vxmesh.LODRecord{{BeginIndex: 0, EndIndex: uint32(mesh.NoOfIndices())}}

	logger.Printf("cubic surface extraction took %s (region = %dx%dx%d)", time.Since(start), width, height, depth)

	return mesh, nil
}

// extractVoxelFaces examines the three principal (-X,-Y,-Z) neighbours of
// the voxel at (x,y,z) relative to reg's lower corner and emits at most
// one quad per direction (six checks total: three "this vs neighbour"
// and three "neighbour vs this").
func extractVoxelFaces[V comparable](
	sampler voxel.Sampler[V],
	mesh *vxmesh.Mesh[vxmesh.CubicVertex[V]],
	planes *quadPlanes,
	previous, current *sliceBuffer[V],
	regX, regY, regZ int32,
	isQuadNeeded IsQuadNeededFunc[V],
	contributesToAO ContributesToAOFunc[V],
) error {
	voxelCurrent := sampler.GetVoxel()

	left := sampler.Peek(-1, 0, 0)
	before := sampler.Peek(0, 0, -1)
	below := sampler.Peek(0, -1, 0)

	add := func(buf *sliceBuffer[V], x, y, z int32, material V, face1, face2, corner V) (uint32, error) {
		return addVertex(buf, x, y, z, material, ambientOcclusion(contributesToAO(face1), contributesToAO(face2), contributesToAO(corner)), mesh)
	}

	// X [A] LEFT: quad between current and left, outward -X.
	if needed, material := isQuadNeeded(voxelCurrent, left); needed {
		leftBefore := sampler.Peek(-1, 0, -1)
		belowLeft := sampler.Peek(-1, -1, 0)
		belowLeftBefore := sampler.Peek(-1, -1, -1)
		leftBehind := sampler.Peek(-1, 0, 1)
		belowLeftBehind := sampler.Peek(-1, -1, 1)
		aboveLeft := sampler.Peek(-1, 1, 0)
		aboveLeftBehind := sampler.Peek(-1, 1, 1)
		aboveLeftBefore := sampler.Peek(-1, 1, -1)

		v01, err := add(previous, regX, regY, regZ, material, leftBefore, belowLeft, belowLeftBefore)
		if err != nil {
			return err
		}
		v14, err := add(current, regX, regY, regZ+1, material, belowLeft, leftBehind, belowLeftBehind)
		if err != nil {
			return err
		}
		v28, err := add(current, regX, regY+1, regZ+1, material, leftBehind, aboveLeft, aboveLeftBehind)
		if err != nil {
			return err
		}
		v35, err := add(previous, regX, regY+1, regZ, material, aboveLeft, leftBefore, aboveLeftBefore)
		if err != nil {
			return err
		}
		planes.add(negativeX, regX, quad{vertices: [4]uint32{v01, v14, v28, v35}})
	}

	// X [B] RIGHT: quad between left and current, outward +X.
	if needed, material := isQuadNeeded(left, voxelCurrent); needed {
		bBefore := sampler.Peek(0, 0, -1)
		bBehind := sampler.Peek(0, 0, 1)
		bAbove := sampler.Peek(0, 1, 0)
		bBelow := sampler.Peek(0, -1, 0)
		bBelowBefore := sampler.Peek(0, -1, -1)
		bBelowBehind := sampler.Peek(0, -1, 1)
		bAboveBefore := sampler.Peek(0, 1, -1)
		bAboveBehind := sampler.Peek(0, 1, 1)

		v02, err := add(previous, regX, regY, regZ, material, bBelow, bBefore, bBelowBefore)
		if err != nil {
			return err
		}
		v13, err := add(current, regX, regY, regZ+1, material, bBelow, bBehind, bBelowBehind)
		if err != nil {
			return err
		}
		v27, err := add(current, regX, regY+1, regZ+1, material, bAbove, bBehind, bAboveBehind)
		if err != nil {
			return err
		}
		v36, err := add(previous, regX, regY+1, regZ, material, bAbove, bBefore, bAboveBefore)
		if err != nil {
			return err
		}
		planes.add(positiveX, regX, quad{vertices: [4]uint32{v02, v36, v27, v13}})
	}

	// Y [C] BELOW: quad between current and below, outward -Y.
	if needed, material := isQuadNeeded(voxelCurrent, below); needed {
		belowBefore := sampler.Peek(0, -1, -1)
		belowLeft := sampler.Peek(-1, -1, 0)
		belowLeftBefore := sampler.Peek(-1, -1, -1)
		belowRight := sampler.Peek(1, -1, 0)
		belowRightBefore := sampler.Peek(1, -1, -1)
		belowBehind := sampler.Peek(0, -1, 1)
		belowRightBehind := sampler.Peek(1, -1, 1)
		belowLeftBehind := sampler.Peek(-1, -1, 1)

		v01, err := add(previous, regX, regY, regZ, material, belowBefore, belowLeft, belowLeftBefore)
		if err != nil {
			return err
		}
		v12, err := add(previous, regX+1, regY, regZ, material, belowRight, belowBefore, belowRightBefore)
		if err != nil {
			return err
		}
		v23, err := add(current, regX+1, regY, regZ+1, material, belowBehind, belowRight, belowRightBehind)
		if err != nil {
			return err
		}
		v34, err := add(current, regX, regY, regZ+1, material, belowLeft, belowBehind, belowLeftBehind)
		if err != nil {
			return err
		}
		planes.add(negativeY, regY, quad{vertices: [4]uint32{v01, v12, v23, v34}})
	}

	// Y [D] ABOVE: quad between below and current, outward +Y.
	if needed, material := isQuadNeeded(below, voxelCurrent); needed {
		dLeft := sampler.Peek(-1, 0, 0)
		dRight := sampler.Peek(1, 0, 0)
		dBefore := sampler.Peek(0, 0, -1)
		dBehind := sampler.Peek(0, 0, 1)
		dLeftBefore := sampler.Peek(-1, 0, -1)
		dRightBefore := sampler.Peek(1, 0, -1)
		dLeftBehind := sampler.Peek(-1, 0, 1)
		dRightBehind := sampler.Peek(1, 0, 1)

		v05, err := add(previous, regX, regY, regZ, material, dBefore, dLeft, dLeftBefore)
		if err != nil {
			return err
		}
		v16, err := add(previous, regX+1, regY, regZ, material, dRight, dBefore, dRightBefore)
		if err != nil {
			return err
		}
		v27, err := add(current, regX+1, regY, regZ+1, material, dBehind, dRight, dRightBehind)
		if err != nil {
			return err
		}
		v38, err := add(current, regX, regY, regZ+1, material, dLeft, dBehind, dLeftBehind)
		if err != nil {
			return err
		}
		planes.add(positiveY, regY, quad{vertices: [4]uint32{v05, v38, v27, v16}})
	}

	// Z [E] BEFORE: quad between current and before, outward -Z.
	if needed, material := isQuadNeeded(voxelCurrent, before); needed {
		belowBefore := sampler.Peek(0, -1, -1)
		leftBefore := sampler.Peek(-1, 0, -1)
		belowLeftBefore := sampler.Peek(-1, -1, -1)
		aboveBefore := sampler.Peek(0, 1, -1)
		aboveLeftBefore := sampler.Peek(-1, 1, -1)
		rightBefore := sampler.Peek(1, 0, -1)
		aboveRightBefore := sampler.Peek(1, 1, -1)
		belowRightBefore := sampler.Peek(1, -1, -1)

		v01, err := add(previous, regX, regY, regZ, material, belowBefore, leftBefore, belowLeftBefore)
		if err != nil {
			return err
		}
		v15, err := add(previous, regX, regY+1, regZ, material, aboveBefore, leftBefore, aboveLeftBefore)
		if err != nil {
			return err
		}
		v26, err := add(previous, regX+1, regY+1, regZ, material, aboveBefore, rightBefore, aboveRightBefore)
		if err != nil {
			return err
		}
		v32, err := add(previous, regX+1, regY, regZ, material, belowBefore, rightBefore, belowRightBefore)
		if err != nil {
			return err
		}
		planes.add(negativeZ, regZ, quad{vertices: [4]uint32{v01, v15, v26, v32}})
	}

	// Z [F] BEHIND: quad between before and current, outward +Z.
	if needed, material := isQuadNeeded(before, voxelCurrent); needed {
		fLeft := sampler.Peek(-1, 0, 0)
		fRight := sampler.Peek(1, 0, 0)
		fAbove := sampler.Peek(0, 1, 0)
		fBelow := sampler.Peek(0, -1, 0)
		fAboveLeft := sampler.Peek(-1, 1, 0)
		fAboveRight := sampler.Peek(1, 1, 0)
		fBelowLeft := sampler.Peek(-1, -1, 0)
		fBelowRight := sampler.Peek(1, -1, 0)

		v04, err := add(previous, regX, regY, regZ, material, fBelow, fLeft, fBelowLeft)
		if err != nil {
			return err
		}
		v18, err := add(previous, regX, regY+1, regZ, material, fAbove, fLeft, fAboveLeft)
		if err != nil {
			return err
		}
		v27, err := add(previous, regX+1, regY+1, regZ, material, fAbove, fRight, fAboveRight)
		if err != nil {
			return err
		}
		v33, err := add(previous, regX+1, regY, regZ, material, fBelow, fRight, fBelowRight)
		if err != nil {
			return err
		}
		planes.add(positiveZ, regZ, quad{vertices: [4]uint32{v04, v33, v27, v18}})
	}

	return nil
}

// addVertex implements the §4.1.1 dedup/allocate procedure: probe the up
// to MaxVerticesPerPosition slots at (x,y,*) in buf, returning an
// existing index on a (material, ao) match, allocating a new vertex on
// the first empty slot, or failing with ErrVertexSlotExhausted.
func addVertex[V comparable](buf *sliceBuffer[V], x, y, z int32, material V, ao uint8, mesh *vxmesh.Mesh[vxmesh.CubicVertex[V]]) (uint32, error) {
	base := buf.base(x, y)

	for ct := int32(0); ct < MaxVerticesPerPosition; ct++ {
		slot := &buf.slots[base+ct]

		if !slot.occupied {
			idx := mesh.AddVertex(vxmesh.CubicVertex[V]{
				EncodedPosition:  [3]uint8{uint8(x), uint8(y), uint8(z)},
				Data:             material,
				AmbientOcclusion: ao,
			})
			slot.occupied = true
			slot.index = int32(idx)
			slot.material = material
			slot.ao = ao
			return idx, nil
		}

		if slot.material == material && slot.ao == ao {
			return uint32(slot.index), nil
		}
	}

	return 0, fmt.Errorf("%w: at lattice corner (%d,%d,%d)", ErrVertexSlotExhausted, x, y, z)
}

// triangulateQuad splits q into two triangles along whichever diagonal
// minimises the ambient-occlusion interpolation artifact (§4.1.4).
func triangulateQuad[V comparable](mesh *vxmesh.Mesh[vxmesh.CubicVertex[V]], q quad) {
	v00 := mesh.GetVertex(q.vertices[3])
	v01 := mesh.GetVertex(q.vertices[0])
	v10 := mesh.GetVertex(q.vertices[2])
	v11 := mesh.GetVertex(q.vertices[1])

	if int(v00.AmbientOcclusion)+int(v11.AmbientOcclusion) > int(v01.AmbientOcclusion)+int(v10.AmbientOcclusion) {
		mesh.AddTriangle(q.vertices[1], q.vertices[2], q.vertices[3])
		mesh.AddTriangle(q.vertices[1], q.vertices[3], q.vertices[0])
	} else {
		mesh.AddTriangle(q.vertices[0], q.vertices[1], q.vertices[2])
		mesh.AddTriangle(q.vertices[0], q.vertices[2], q.vertices[3])
	}
}
