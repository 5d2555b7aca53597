package cubic

// faceDirection names one of the six directions a quad can face.
type faceDirection int

const (
	negativeX faceDirection = iota
	positiveX
	negativeY
	positiveY
	negativeZ
	positiveZ
	noOfFaces
)

// quad is an ordered quadruple of vertex indices, CCW when viewed from
// the quad's outward normal.
type quad struct {
	vertices [4]uint32
}

// quadPlanes holds, for each of the six face directions, one list of
// quads per slice position within the region.
type quadPlanes struct {
	lists [noOfFaces][][]quad
}

func newQuadPlanes(width, height, depth int32) *quadPlanes {
	qp := &quadPlanes{}
	qp.lists[negativeX] = make([][]quad, width)
	qp.lists[positiveX] = make([][]quad, width)
	qp.lists[negativeY] = make([][]quad, height)
	qp.lists[positiveY] = make([][]quad, height)
	qp.lists[negativeZ] = make([][]quad, depth)
	qp.lists[positiveZ] = make([][]quad, depth)
	return qp
}

func (qp *quadPlanes) add(dir faceDirection, slice int32, q quad) {
	qp.lists[dir][slice] = append(qp.lists[dir][slice], q)
}

// attributesEqual reports whether two vertices carry the same material
// and ambient-occlusion term; position equality is not required because
// slice-buffer dedup already guarantees index equality at shared corners.
func attributesEqual[V comparable](a, b cubicVertexLike[V]) bool {
	return a.Data == b.Data && a.AmbientOcclusion == b.AmbientOcclusion
}

// cubicVertexLike avoids importing vxmesh just for this comparison; it
// is satisfied by vxmesh.CubicVertex[V].
type cubicVertexLike[V comparable] struct {
	Data             V
	AmbientOcclusion uint8
}

// tryMergeQuads attempts to merge q2 into q1 in place. It returns true on
// success, in which case the caller should drop q2 from its list.
func tryMergeQuads[V comparable](q1, q2 *quad, vertexOf func(uint32) cubicVertexLike[V]) bool {
	for i := 0; i < 4; i++ {
		if !attributesEqual(vertexOf(q1.vertices[i]), vertexOf(q2.vertices[i])) {
			return false
		}
	}

	switch {
	case q1.vertices[0] == q2.vertices[1] && q1.vertices[3] == q2.vertices[2]:
		q1.vertices[0] = q2.vertices[0]
		q1.vertices[3] = q2.vertices[3]
		return true
	case q1.vertices[3] == q2.vertices[0] && q1.vertices[2] == q2.vertices[1]:
		q1.vertices[3] = q2.vertices[3]
		q1.vertices[2] = q2.vertices[2]
		return true
	case q1.vertices[1] == q2.vertices[0] && q1.vertices[2] == q2.vertices[3]:
		q1.vertices[1] = q2.vertices[1]
		q1.vertices[2] = q2.vertices[2]
		return true
	case q1.vertices[0] == q2.vertices[3] && q1.vertices[1] == q2.vertices[2]:
		q1.vertices[0] = q2.vertices[0]
		q1.vertices[1] = q2.vertices[1]
		return true
	default:
		return false
	}
}

// mergeQuadList repeatedly merges adjacent, attribute-equal quads in
// list until a full pass makes no change, and returns the surviving
// quads.
func mergeQuadList[V comparable](list []quad, vertexOf func(uint32) cubicVertexLike[V]) []quad {
	for {
		mergedAny := false
		for i := 0; i < len(list); i++ {
			j := i + 1
			for j < len(list) {
				if tryMergeQuads(&list[i], &list[j], vertexOf) {
					list = append(list[:j], list[j+1:]...)
					mergedAny = true
				} else {
					j++
				}
			}
		}
		if !mergedAny {
			return list
		}
	}
}
