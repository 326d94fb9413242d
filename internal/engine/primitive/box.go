// Package primitive supplies fixed renderable geometry that bypasses the
// surface tessellator.
package primitive

// Vertex is a position/normal pair in the layout the renderer uploads.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// The unit box: 8 corners, 6 face normals, and a corner/normal index pair
// for each of the 36 triangle vertices.
var (
	boxCorners = [8][3]float32{
		{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5},
		{0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
	}
	boxNormals = [6][3]float32{
		{0, 0, 1}, {0, 0, -1}, {0, 1, 0},
		{0, -1, 0}, {1, 0, 0}, {-1, 0, 0},
	}
	boxIndices = [36][2]int{
		{0, 1}, {6, 1}, {4, 1}, {0, 1}, {2, 1}, {6, 1}, {0, 5}, {3, 5}, {2, 5},
		{0, 5}, {1, 5}, {3, 5}, {2, 2}, {7, 2}, {6, 2}, {2, 2}, {3, 2}, {7, 2},
		{4, 4}, {6, 4}, {7, 4}, {4, 4}, {7, 4}, {5, 4}, {0, 3}, {4, 3}, {5, 3},
		{0, 3}, {5, 3}, {1, 3}, {1, 0}, {5, 0}, {7, 0}, {1, 0}, {7, 0}, {3, 0},
	}
)

// Box returns the 36 vertices of the unit cube centered on the origin,
// three per triangle, with per-face normals.
func Box() []Vertex {
	out := make([]Vertex, len(boxIndices))
	for i, idx := range boxIndices {
		out[i] = Vertex{Position: boxCorners[idx[0]], Normal: boxNormals[idx[1]]}
	}
	return out
}
