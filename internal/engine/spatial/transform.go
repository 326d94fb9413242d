// Package spatial provides the scale/rotate/translate pose shared by
// renderable objects and the simulated body.
package spatial

import "github.com/go-gl/mathgl/mgl64"

// Transform is a pose built from a scale, a rotation about a fixed axis
// and a translation, applied in that order. RotationAxis is assumed unit
// length (a zero axis is tolerated only while the angle is zero).
type Transform struct {
	Scale         mgl64.Vec3
	Translation   mgl64.Vec3
	RotationAxis  mgl64.Vec3
	RotationAngle float64
}

// Matrix returns the model matrix Translate·Rotate·Scale.
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(mgl64.HomogRotate3D(t.RotationAngle, t.RotationAxis)).
		Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Inverse returns the inverse model matrix as the closed-form product
// Scale⁻¹·Rotate(−angle)·Translate(−translation). Undefined when any
// scale component is zero.
func (t Transform) Inverse() mgl64.Mat4 {
	return mgl64.Scale3D(1/t.Scale.X(), 1/t.Scale.Y(), 1/t.Scale.Z()).
		Mul4(mgl64.HomogRotate3D(-t.RotationAngle, t.RotationAxis)).
		Mul4(mgl64.Translate3D(-t.Translation.X(), -t.Translation.Y(), -t.Translation.Z()))
}

// Apply transforms the point p by the model matrix.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Matrix().Mul4x1(p.Vec4(1)).Vec3()
}
