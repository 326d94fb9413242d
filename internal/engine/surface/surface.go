// Package surface evaluates parametric surfaces over the unit square and
// tessellates them into triangle-strip meshes. Evaluators work on dual
// numbers, so exact analytic normals fall out of the evaluation instead
// of being derived by hand or by differencing.
package surface

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasswing/tetherbox/internal/engine/dual"
)

// Param is a surface parameter or coordinate: a dual number carrying the
// partial derivatives with respect to u and v.
type Param = dual.Number[mgl64.Vec2]

// U wraps a u coordinate as a Param with unit derivative in u.
func U(u float64) Param { return dual.New(u, mgl64.Vec2{1, 0}) }

// V wraps a v coordinate as a Param with unit derivative in v.
func V(v float64) Param { return dual.New(v, mgl64.Vec2{0, 1}) }

// Evaluator maps a point of the unit parameter square to a coordinate
// triple. Implementations receive u and v prepared by U and V and must
// build x, y, z with dual arithmetic so the derivatives stay exact.
type Evaluator interface {
	Evaluate(u, v Param) (x, y, z Param)
}

// Point is one evaluated surface sample. The normal is the cross product
// of the partial-derivative tangents and is left unnormalized.
type Point struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	TexCoord mgl64.Vec2
}

// Sample evaluates ev at (u, v) and assembles position, normal and
// texture coordinate from the dual results.
func Sample(ev Evaluator, u, v float64) Point {
	x, y, z := ev.Evaluate(U(u), V(v))
	du := mgl64.Vec3{x.Deriv.X(), y.Deriv.X(), z.Deriv.X()}
	dv := mgl64.Vec3{x.Deriv.Y(), y.Deriv.Y(), z.Deriv.Y()}
	return Point{
		Position: mgl64.Vec3{x.Val, y.Val, z.Val},
		Normal:   du.Cross(dv),
		TexCoord: mgl64.Vec2{u, v},
	}
}
