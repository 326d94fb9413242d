// Package camera provides the perspective cameras that view the scene.
package camera

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera: extrinsics (eye, look-at, up) and
// intrinsics (vertical field of view in radians, aspect ratio, near and
// far clip planes).
type Camera struct {
	Eye    mgl64.Vec3
	LookAt mgl64.Vec3
	Up     mgl64.Vec3

	FOV    float64
	Aspect float64
	Near   float64
	Far    float64
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.LookAt, c.Up)
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}
