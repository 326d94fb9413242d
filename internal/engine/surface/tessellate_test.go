package surface

import (
	"math/rand"
	"testing"
)

func TestTessellateCardinality(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"default", DefaultResolution, DefaultResolution},
		{"narrow", 2, 3},
		{"minimal", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Tessellate(plane{}, tc.rows, tc.cols)

			if m.Strips != tc.rows {
				t.Errorf("Strips = %d, want %d", m.Strips, tc.rows)
			}
			if want := 2 * (tc.cols + 1); m.VerticesPerStrip != want {
				t.Errorf("VerticesPerStrip = %d, want %d", m.VerticesPerStrip, want)
			}
			if want := tc.rows * 2 * (tc.cols + 1); len(m.Vertices) != want {
				t.Errorf("len(Vertices) = %d, want %d", len(m.Vertices), want)
			}
		})
	}
}

func TestTessellateDefaultGrid(t *testing.T) {
	m := Tessellate(NewTerrain(rand.New(rand.NewSource(1))), DefaultResolution, DefaultResolution)
	if m.Strips != 20 || m.VerticesPerStrip != 42 || len(m.Vertices) != 840 {
		t.Errorf("default grid = %d strips × %d vertices (%d total), want 20 × 42 (840)",
			m.Strips, m.VerticesPerStrip, len(m.Vertices))
	}
}

func TestTessellateStripInterleaving(t *testing.T) {
	m := Tessellate(plane{}, 2, 2)

	// Strip 0 walks u = 0, 0.5, 1 alternating rows v=0 and v=0.5; strip 1
	// repeats with rows v=0.5 and v=1.
	wantUV := [][2]float32{
		{0, 0}, {0, 0.5}, {0.5, 0}, {0.5, 0.5}, {1, 0}, {1, 0.5},
		{0, 0.5}, {0, 1}, {0.5, 0.5}, {0.5, 1}, {1, 0.5}, {1, 1},
	}
	if len(m.Vertices) != len(wantUV) {
		t.Fatalf("len(Vertices) = %d, want %d", len(m.Vertices), len(wantUV))
	}
	for k, want := range wantUV {
		if m.Vertices[k].TexCoord != want {
			t.Errorf("vertex %d texcoord = %v, want %v", k, m.Vertices[k].TexCoord, want)
		}
	}
}

func TestTessellateVerticesMatchSamples(t *testing.T) {
	ev := NewTerrain(rand.New(rand.NewSource(5)))
	rows, cols := 4, 3
	m := Tessellate(ev, rows, cols)

	// Vertex 2·(i·(cols+1)+j) is the bottom-row sample of strip i at
	// column j; its successor is the top-row sample.
	checks := []struct{ i, j int }{{0, 0}, {1, 2}, {3, 3}}
	for _, c := range checks {
		k := 2 * (c.i*(cols+1) + c.j)
		u := float64(c.j) / float64(cols)

		bottom := vertex(Sample(ev, u, float64(c.i)/float64(rows)))
		if m.Vertices[k] != bottom {
			t.Errorf("vertex %d = %+v, want %+v", k, m.Vertices[k], bottom)
		}
		top := vertex(Sample(ev, u, float64(c.i+1)/float64(rows)))
		if m.Vertices[k+1] != top {
			t.Errorf("vertex %d = %+v, want %+v", k+1, m.Vertices[k+1], top)
		}
	}
}
