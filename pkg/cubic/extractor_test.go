package cubic

import (
	"testing"

	"github.com/alexsaalberg/polyvox/pkg/region"
	"github.com/alexsaalberg/polyvox/pkg/voxel"
	"github.com/alexsaalberg/polyvox/pkg/vxmesh"
	"github.com/stretchr/testify/require"
)

type material uint8

const (
	air material = 0
	a  material = 1
	b  material = 2
)

func solidIsQuadNeeded(inside, outside material) (bool, material) {
	if inside != air && outside == air {
		return true, inside
	}
	return false, air
}

func alwaysOccludes(v material) bool { return v != air }

func TestExtractSingleSolidVoxel(t *testing.T) {
	vol := voxel.NewVolume[material](0, 0, 0, 2, 2, 2, voxel.ConstantBorder[material]{Value: air})
	vol.Set(1, 1, 1, a)

	mesh, err := Extract[material](vol.NewSampler(), region.New(0, 0, 0, 2, 2, 2), solidIsQuadNeeded, alwaysOccludes, false)
	require.NoError(t, err)

	require.Equal(t, 24, mesh.NoOfVertices())
	require.Equal(t, 36, mesh.NoOfIndices())
	for _, v := range mesh.Vertices {
		require.EqualValues(t, 3, v.AmbientOcclusion)
	}
}

func TestExtractSolid2x2x2BlockMergeCollapsesToSixQuads(t *testing.T) {
	vol := voxel.NewVolume[material](0, 0, 0, 3, 3, 3, voxel.ConstantBorder[material]{Value: air})
	for x := int32(1); x <= 2; x++ {
		for y := int32(1); y <= 2; y++ {
			for z := int32(1); z <= 2; z++ {
				vol.Set(x, y, z, a)
			}
		}
	}

	reg := region.New(0, 0, 0, 3, 3, 3)

	unmerged, err := Extract[material](vol.NewSampler(), reg, solidIsQuadNeeded, alwaysOccludes, false)
	require.NoError(t, err)
	require.Equal(t, 24, unmerged.NoOfIndices()/6)

	merged, err := Extract[material](vol.NewSampler(), reg, solidIsQuadNeeded, alwaysOccludes, true)
	require.NoError(t, err)
	require.Equal(t, 6, merged.NoOfIndices()/6)
	require.Equal(t, 12, merged.NoOfIndices()/3)
}

func TestExtractFlatPlaneMergesToTwoQuads(t *testing.T) {
	// The plane extends one voxel beyond the extracted region on every
	// horizontal side so the region's perimeter sees solid neighbours
	// there too; only the top and bottom faces border air. The top face
	// lies on the y=0/y=1 boundary and so belongs to the region holding
	// y=1, which is why the region includes the air layer above the plane.
	vol := voxel.NewVolume[material](-1, -1, -1, 4, 1, 4, voxel.ConstantBorder[material]{Value: air})
	for x := int32(-1); x <= 4; x++ {
		for z := int32(-1); z <= 4; z++ {
			vol.Set(x, 0, z, a)
		}
	}

	reg := region.New(0, 0, 0, 3, 1, 3)
	mesh, err := Extract[material](vol.NewSampler(), reg, solidIsQuadNeeded, alwaysOccludes, true)
	require.NoError(t, err)

	require.Equal(t, 2, mesh.NoOfIndices()/6)
	require.Equal(t, 4, mesh.NoOfIndices()/3)
}

func TestExtractCheckerboardDoesNotMergeAcrossMaterials(t *testing.T) {
	vol := voxel.NewVolume[material](0, 0, 0, 1, 0, 1, voxel.ConstantBorder[material]{Value: air})
	vol.Set(0, 0, 0, a)
	vol.Set(1, 0, 0, b)
	vol.Set(0, 0, 1, b)
	vol.Set(1, 0, 1, a)

	reg := region.New(0, 0, 0, 1, 0, 1)
	mesh, err := Extract[material](vol.NewSampler(), reg, solidIsQuadNeeded, alwaysOccludes, true)
	require.NoError(t, err)

	require.GreaterOrEqual(t, mesh.NoOfIndices()/6, 8)
}

func TestExtractAdjacentRegionsAreSeamConsistent(t *testing.T) {
	// A 6x2x2 solid block surrounded by one layer of air inside an 8x4x4
	// volume, split down the middle into two 4x4x4 regions, is
	// mirror-symmetric about the split plane. The air layer keeps every
	// outer face of the block inside one of the two regions (a face on a
	// region's upper boundary would otherwise belong to the next region),
	// so both halves must extract to the same vertex and triangle counts;
	// a seam bug (double-counted or missing boundary faces) would break
	// that symmetry.
	vol := voxel.NewVolume[material](0, 0, 0, 7, 3, 3, voxel.ConstantBorder[material]{Value: air})
	for x := int32(1); x <= 6; x++ {
		for y := int32(1); y <= 2; y++ {
			for z := int32(1); z <= 2; z++ {
				vol.Set(x, y, z, a)
			}
		}
	}

	left, err := Extract[material](vol.NewSampler(), region.New(0, 0, 0, 3, 3, 3), solidIsQuadNeeded, alwaysOccludes, false)
	require.NoError(t, err)
	right, err := Extract[material](vol.NewSampler(), region.New(4, 0, 0, 7, 3, 3), solidIsQuadNeeded, alwaysOccludes, false)
	require.NoError(t, err)

	require.Equal(t, left.NoOfVertices(), right.NoOfVertices())
	require.Equal(t, left.NoOfIndices(), right.NoOfIndices())
}

func TestExtractRejectsOversizedRegion(t *testing.T) {
	vol := voxel.NewVolume[material](0, 0, 0, 300, 0, 0, voxel.ConstantBorder[material]{Value: air})
	_, err := Extract[material](vol.NewSampler(), region.New(0, 0, 0, 300, 0, 0), solidIsQuadNeeded, alwaysOccludes, false)
	require.ErrorIs(t, err, ErrRegionTooLarge)
}

func TestAddVertexFillsAllSlotsThenExhausts(t *testing.T) {
	// MaxVerticesPerPosition distinct materials can share a lattice
	// corner (one per slot); a ninth distinct (material, ao) combo at
	// that same corner has nowhere left to go.
	mesh := vxmesh.New[vxmesh.CubicVertex[material]]()
	buf := newSliceBuffer[material](4, 4)

	seen := make(map[uint32]bool)
	for i := 0; i < MaxVerticesPerPosition; i++ {
		idx, err := addVertex(buf, 1, 1, 0, material(i+1), 0, mesh)
		require.NoError(t, err)
		require.False(t, seen[idx], "each distinct (material, ao) pair must get its own vertex")
		seen[idx] = true
	}
	require.Equal(t, MaxVerticesPerPosition, mesh.NoOfVertices())

	// A slot hit with a (material, ao) pair already occupying it returns
	// the existing vertex rather than allocating, even once every slot
	// is full.
	idx, err := addVertex(buf, 1, 1, 0, material(1), 0, mesh)
	require.NoError(t, err)
	require.EqualValues(t, 0, idx)
	require.Equal(t, MaxVerticesPerPosition, mesh.NoOfVertices())

	_, err = addVertex(buf, 1, 1, 0, material(MaxVerticesPerPosition+1), 0, mesh)
	require.ErrorIs(t, err, ErrVertexSlotExhausted)
}
