package decimate

import (
	"github.com/alexsaalberg/polyvox/internal/vecutil"
	"github.com/alexsaalberg/polyvox/pkg/vxmesh"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minDotProductForMaterialEdgeCollapse = 0.999
	minDotProductForGeometricEdgeCollapse = 0.999
	minDotProductForFaceFlip              = 0.9
	duplicatePositionEpsilonSq            = 1e-3
)

// Decimate repeatedly collapses edges of mesh in place, respecting
// policy's material, normal and edge-flag information, until a pass
// collapses nothing. It returns the number of passes executed.
func Decimate[VertexT any, M comparable](mesh *vxmesh.Mesh[VertexT], policy VertexPolicy[VertexT, M], normalDotThreshold float32) int {
	neighboursUsingMaterial := countNeighboursUsingSameMaterial(mesh, policy)

	passes := 0
	for {
		collapsed := performPass(mesh, policy, normalDotThreshold, neighboursUsingMaterial)
		mesh.RemoveDegenerateTriangles()
		mesh.RemoveUnusedVertices()
		passes++

		logger.Printf("decimation pass %d collapsed %d edges, mesh now has %d vertices / %d triangles",
			passes, collapsed, mesh.NoOfVertices(), mesh.NoOfIndices()/3)

		if collapsed == 0 {
			break
		}
	}

	mesh.LODs = []vxmesh.LODRecord{{BeginIndex: 0, EndIndex: uint32(mesh.NoOfIndices())}}
	return passes
}

// countNeighboursUsingSameMaterial counts, for every vertex, how many of
// its triangle-adjacent neighbours share its material. It is computed
// once against the mesh's original topology and reused by every pass,
// the way the source's pre-loop countNoOfNeighboursUsingMaterial does.
func countNeighboursUsingSameMaterial[VertexT any, M comparable](mesh *vxmesh.Mesh[VertexT], policy VertexPolicy[VertexT, M]) []int {
	neighbours := make([]map[uint32]struct{}, mesh.NoOfVertices())
	for i := range neighbours {
		neighbours[i] = make(map[uint32]struct{})
	}

	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		v0, v1, v2 := mesh.Indices[t], mesh.Indices[t+1], mesh.Indices[t+2]
		neighbours[v0][v1] = struct{}{}
		neighbours[v0][v2] = struct{}{}
		neighbours[v1][v0] = struct{}{}
		neighbours[v1][v2] = struct{}{}
		neighbours[v2][v0] = struct{}{}
		neighbours[v2][v1] = struct{}{}
	}

	counts := make([]int, mesh.NoOfVertices())
	for v, set := range neighbours {
		material := policy.Material(mesh.GetVertex(uint32(v)))
		for n := range set {
			if policy.Material(mesh.GetVertex(n)) == material {
				counts[v]++
			}
		}
	}
	return counts
}

type passState[VertexT any] struct {
	trianglesUsingVertex  [][]uint32
	vertexMapper          []uint32
	vertexLocked          []bool
	noOfDifferentNormals  []int
	hasDuplicate          []bool
}

func performPass[VertexT any, M comparable](mesh *vxmesh.Mesh[VertexT], policy VertexPolicy[VertexT, M], normalDotThreshold float32, neighboursUsingMaterial []int) int {
	n := mesh.NoOfVertices()

	state := &passState[VertexT]{
		trianglesUsingVertex: make([][]uint32, n),
		vertexMapper:         make([]uint32, n),
		vertexLocked:         make([]bool, n),
		noOfDifferentNormals: make([]int, n),
		hasDuplicate:         make([]bool, n),
	}
	for v := range state.vertexMapper {
		state.vertexMapper[v] = uint32(v)
	}

	noOfTriangles := len(mesh.Indices) / 3
	triNormals := make([]mgl32.Vec3, noOfTriangles)
	for t := 0; t < noOfTriangles; t++ {
		v0, v1, v2 := mesh.Indices[t*3], mesh.Indices[t*3+1], mesh.Indices[t*3+2]
		state.trianglesUsingVertex[v0] = append(state.trianglesUsingVertex[v0], uint32(t))
		state.trianglesUsingVertex[v1] = append(state.trianglesUsingVertex[v1], uint32(t))
		state.trianglesUsingVertex[v2] = append(state.trianglesUsingVertex[v2], uint32(t))

		triNormals[t] = vecutil.FaceNormal(
			policy.Position(mesh.GetVertex(v0)),
			policy.Position(mesh.GetVertex(v1)),
			policy.Position(mesh.GetVertex(v2)),
		)
	}

	for v := 0; v < n; v++ {
		sum := mgl32.Vec3{}
		for _, t := range state.trianglesUsingVertex[v] {
			sum = sum.Add(triNormals[t])
		}
		state.noOfDifferentNormals[v] = vecutil.DifferentNormalAxes(sum)
	}

	for i := 0; i < n-1; i++ {
		pi := policy.Position(mesh.GetVertex(uint32(i)))
		for j := i + 1; j < n; j++ {
			pj := policy.Position(mesh.GetVertex(uint32(j)))
			diff := pi.Sub(pj)
			if diff.Dot(diff) < duplicatePositionEpsilonSq {
				state.hasDuplicate[i] = true
				state.hasDuplicate[j] = true
			}
		}
	}

	collapsed := 0
	for t := 0; t < noOfTriangles; t++ {
		for edge := 0; edge < 3; edge++ {
			v0 := mesh.Indices[t*3+edge]
			v1 := mesh.Indices[t*3+(edge+1)%3]

			if !canCollapse(mesh, policy, state, triNormals, neighboursUsingMaterial, normalDotThreshold, v0, v1) {
				continue
			}

			state.vertexMapper[v0] = v1
			state.vertexLocked[v0] = true
			state.vertexLocked[v1] = true
			collapsed++
		}
	}

	if collapsed > 0 {
		for i, idx := range mesh.Indices {
			mesh.Indices[i] = state.vertexMapper[idx]
		}
	}

	return collapsed
}

func canCollapse[VertexT any, M comparable](
	mesh *vxmesh.Mesh[VertexT],
	policy VertexPolicy[VertexT, M],
	state *passState[VertexT],
	triNormals []mgl32.Vec3,
	neighboursUsingMaterial []int,
	normalDotThreshold float32,
	v0, v1 uint32,
) bool {
	if state.vertexLocked[v0] || state.vertexLocked[v1] {
		return false
	}

	vertex0 := mesh.GetVertex(v0)
	vertex1 := mesh.GetVertex(v1)

	if policy.Material(vertex0) != policy.Material(vertex1) {
		return false
	}

	normal0, hasNormal0 := policy.Normal(vertex0)
	normal1, hasNormal1 := policy.Normal(vertex1)
	flags0, hasFlags0 := policy.Flags(vertex0)
	flags1, hasFlags1 := policy.Flags(vertex1)

	flagged := hasNormal0 && hasNormal1 && hasFlags0 && hasFlags1

	if flagged {
		if flags0.onMaterialEdge() || flags1.onMaterialEdge() {
			allMatch := neighboursUsingMaterial[v0] == neighboursUsingMaterial[v1] && neighboursUsingMaterial[v0] == 4
			movementValid := vecutil.AlignedToAxis(policy.Position(vertex0), policy.Position(vertex1), minDotProductForMaterialEdgeCollapse)
			if !(allMatch && movementValid) {
				return false
			}
		}

		if flags0 != 0 || flags1 != 0 {
			if !isSubset(flags0, flags1) || normal0.Dot(normal1) <= minDotProductForGeometricEdgeCollapse {
				return false
			}
		}

		if normal0.Dot(normal1) < normalDotThreshold {
			return false
		}
	} else {
		if state.noOfDifferentNormals[v0] == 3 {
			return false
		}
		if state.hasDuplicate[v0] {
			return false
		}
		if state.noOfDifferentNormals[v0] > state.noOfDifferentNormals[v1] {
			return false
		}
		if inside, ok := policy.RegionContains(vertex0); ok && !inside {
			return false
		}
	}

	return !anyTriangleFlips(mesh, policy, state, v0, v1)
}

// anyTriangleFlips reports whether collapsing v0 onto v1 would flip the
// orientation of any non-degenerate triangle currently using v0, judged
// against the in-flight vertexMapper so chained collapses within the
// same pass are honoured.
func anyTriangleFlips[VertexT any, M comparable](
	mesh *vxmesh.Mesh[VertexT],
	policy VertexPolicy[VertexT, M],
	state *passState[VertexT],
	v0, v1 uint32,
) bool {
	for _, tri := range state.trianglesUsingVertex[v0] {
		oldA, oldB, oldC := mesh.Indices[tri*3], mesh.Indices[tri*3+1], mesh.Indices[tri*3+2]
		if oldA == oldB || oldB == oldC || oldC == oldA {
			continue
		}

		newA, newB, newC := oldA, oldB, oldC
		if newA == v0 {
			newA = v1
		}
		if newB == v0 {
			newB = v1
		}
		if newC == v0 {
			newC = v1
		}
		if newA == newB || newB == newC || newC == newA {
			continue
		}

		oldNormal := vecutil.FaceNormal(
			policy.Position(mesh.GetVertex(state.vertexMapper[oldA])),
			policy.Position(mesh.GetVertex(state.vertexMapper[oldB])),
			policy.Position(mesh.GetVertex(state.vertexMapper[oldC])),
		).Normalize()
		newNormal := vecutil.FaceNormal(
			policy.Position(mesh.GetVertex(state.vertexMapper[newA])),
			policy.Position(mesh.GetVertex(state.vertexMapper[newB])),
			policy.Position(mesh.GetVertex(state.vertexMapper[newC])),
		).Normalize()

		if oldNormal.Dot(newNormal) < minDotProductForFaceFlip {
			return true
		}
	}
	return false
}
