package vxmesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddVertexAndTriangle(t *testing.T) {
	m := New[int]()
	a := m.AddVertex(10)
	b := m.AddVertex(20)
	c := m.AddVertex(30)
	m.AddTriangle(a, b, c)

	require.Equal(t, 3, m.NoOfVertices())
	require.Equal(t, 3, m.NoOfIndices())
	require.Equal(t, 10, m.GetVertex(a))
}

func TestRemoveUnusedVerticesPreservesFirstAppearanceOrder(t *testing.T) {
	m := New[string]()
	iA := m.AddVertex("a")
	iB := m.AddVertex("b")
	iC := m.AddVertex("c") // unused
	_ = iC
	m.AddTriangle(iB, iA, iB)

	m.RemoveUnusedVertices()

	require.Equal(t, []string{"b", "a"}, m.Vertices)
	require.Equal(t, []uint32{0, 1, 0}, m.Indices)
}

func TestRemoveDegenerateTriangles(t *testing.T) {
	m := New[int]()
	m.Vertices = []int{1, 2, 3}
	m.Indices = []uint32{0, 1, 2, 0, 0, 1, 1, 2, 0}

	m.RemoveDegenerateTriangles()

	require.Equal(t, []uint32{0, 1, 2, 1, 2, 0}, m.Indices)
}

func TestDecodePositionAppliesHalfVoxelOffset(t *testing.T) {
	pos := DecodePosition([3]uint8{1, 2, 3})
	require.InDelta(t, 0.5, pos.X(), 1e-6)
	require.InDelta(t, 1.5, pos.Y(), 1e-6)
	require.InDelta(t, 2.5, pos.Z(), 1e-6)
}
