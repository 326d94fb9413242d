// Package lighting defines the light sources fed to the shading programs.
package lighting

import "github.com/go-gl/mathgl/mgl64"

// MaxLights is the most lights a single program accepts.
const MaxLights = 8

// Light is one light source: ambient and radiant intensity plus a
// homogeneous world position. A zero w component places the light at an
// ideal point, which the shaders treat as directional.
type Light struct {
	Ambient  mgl64.Vec3
	Radiance mgl64.Vec3
	Position mgl64.Vec4
}

// Directional returns a light at the ideal point along dir.
func Directional(dir, ambient, radiance mgl64.Vec3) Light {
	return Light{Ambient: ambient, Radiance: radiance, Position: dir.Vec4(0)}
}

// Point returns a positional light.
func Point(pos, ambient, radiance mgl64.Vec3) Light {
	return Light{Ambient: ambient, Radiance: radiance, Position: pos.Vec4(1)}
}
