package surface

// Vertex is one GL-ready tessellated sample: interleaved position, normal
// and texture coordinate, in the layout the renderer uploads verbatim.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is a tessellated surface laid out as Strips consecutive triangle
// strips of VerticesPerStrip vertices each. Immutable once built.
type Mesh struct {
	Vertices         []Vertex
	Strips           int
	VerticesPerStrip int
}

// DefaultResolution is the grid resolution used when none is configured.
const DefaultResolution = 20

// Tessellate samples ev on a rows×cols grid and lays the samples out as
// rows independent triangle strips. Strip i interleaves the sample rows
// v=i/rows and v=(i+1)/rows at columns u=j/cols for j=0..cols, giving
// 2·(cols+1) vertices per strip and 2·cols triangles per row.
func Tessellate(ev Evaluator, rows, cols int) *Mesh {
	m := &Mesh{
		Vertices:         make([]Vertex, 0, rows*2*(cols+1)),
		Strips:           rows,
		VerticesPerStrip: 2 * (cols + 1),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j <= cols; j++ {
			u := float64(j) / float64(cols)
			m.Vertices = append(m.Vertices,
				vertex(Sample(ev, u, float64(i)/float64(rows))),
				vertex(Sample(ev, u, float64(i+1)/float64(rows))))
		}
	}
	return m
}

func vertex(p Point) Vertex {
	return Vertex{
		Position: [3]float32{float32(p.Position.X()), float32(p.Position.Y()), float32(p.Position.Z())},
		Normal:   [3]float32{float32(p.Normal.X()), float32(p.Normal.Y()), float32(p.Normal.Z())},
		TexCoord: [2]float32{float32(p.TexCoord.X()), float32(p.TexCoord.Y())},
	}
}
