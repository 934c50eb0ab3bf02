// Package geometry holds the hard-coded demo mesh and its edge list.
package geometry

import "wireframe/internal/transform"

// Edge is a pair of vertex indices into a mesh.
type Edge [2]int

// EdgeList is an ordered list of edges. Indices are expected to be in range
// but consumers must skip edges that are not.
type EdgeList []Edge

// Cuboid returns the 100×100×100 demo box spanning z ∈ [0, 100]. Vertices
// 0–3 and 4–7 are the two square faces; 8–15 are duplicated endpoints of the
// four connecting edges.
func Cuboid() transform.Mesh {
	return transform.Mesh{
		{-50, -50, 100},
		{-50, 50, 100},
		{50, 50, 100},
		{50, -50, 100},
		{-50, -50, 0},
		{-50, 50, 0},
		{50, 50, 0},
		{50, -50, 0},
		{-50, -50, 0},
		{-50, -50, 100},
		{-50, 50, 0},
		{-50, 50, 100},
		{50, -50, 0},
		{50, -50, 100},
		{50, 50, 0},
		{50, 50, 100},
	}
}

// CuboidEdges returns the 12 edges of Cuboid.
func CuboidEdges() EdgeList {
	return EdgeList{
		// far face
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
		// near face
		{4, 5},
		{5, 6},
		{6, 7},
		{7, 4},
		// connecting edges
		{8, 9},
		{10, 11},
		{12, 13},
		{14, 15},
	}
}

// InRange reports whether both endpoints index into a sequence of length n.
func (e Edge) InRange(n int) bool {
	return e[0] >= 0 && e[0] < n && e[1] >= 0 && e[1] < n
}
