package surface

import (
	"math"
	"math/rand"

	"github.com/glasswing/tetherbox/internal/engine/dual"
)

// terrainOrder is the number of frequency indices per axis in the cosine sum.
const terrainOrder = 3

// Terrain is the procedural height-field evaluator: a superposition of
// 2-D cosine waves over frequency indices (i, j), with amplitude
// 1/√(i²+j²) (zero for the constant term) and an independent random phase
// per wave. Phases are drawn once at construction and stay fixed for the
// lifetime of the instance, so a Terrain is reproducible per seed.
type Terrain struct {
	amp   [terrainOrder][terrainOrder]float64
	phase [terrainOrder][terrainOrder]float64
}

// NewTerrain builds a Terrain with phases drawn from rng.
func NewTerrain(rng *rand.Rand) *Terrain {
	t := &Terrain{}
	for i := 0; i < terrainOrder; i++ {
		for j := 0; j < terrainOrder; j++ {
			if i == 0 && j == 0 {
				continue
			}
			t.amp[i][j] = 1 / math.Sqrt(float64(i*i+j*j))
			t.phase[i][j] = rng.Float64()
		}
	}
	return t
}

// Evaluate centers the parameter square on the origin and sums the cosine
// waves into the height; the partials ride along in the dual arithmetic.
func (t *Terrain) Evaluate(u, v Param) (x, y, z Param) {
	x = u.SubScalar(0.5)
	z = v.SubScalar(0.5)
	for i := 0; i < terrainOrder; i++ {
		for j := 0; j < terrainOrder; j++ {
			wave := dual.Cos(x.MulScalar(float64(i)).
				Add(z.MulScalar(float64(j))).
				AddScalar(t.phase[i][j]).
				MulScalar(2 * math.Pi))
			y = y.Add(wave.MulScalar(t.amp[i][j]))
		}
	}
	return x, y, z
}
