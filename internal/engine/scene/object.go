package scene

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasswing/tetherbox/internal/engine/physics"
	"github.com/glasswing/tetherbox/internal/engine/primitive"
	"github.com/glasswing/tetherbox/internal/engine/spatial"
	"github.com/glasswing/tetherbox/internal/engine/surface"
)

// Material is the reflectance an object is shaded with.
type Material struct {
	Diffuse   mgl64.Vec3
	Specular  mgl64.Vec3
	Ambient   mgl64.Vec3
	Shininess float64
}

// ShaderKind selects the program an object is drawn with.
type ShaderKind int

const (
	// ShaderPhong is the textured specular program.
	ShaderPhong ShaderKind = iota
	// ShaderTerrain tints the diffuse color by model-space height.
	ShaderTerrain
)

// Object is one renderable: geometry plus pose, material and program
// selection. Exactly one of Surface or Solid holds the geometry. An
// object with a Body delegates its pose to the simulation.
type Object struct {
	Material Material
	Shader   ShaderKind
	Texture  *image.RGBA

	Surface *surface.Mesh
	Solid   []primitive.Vertex

	Transform spatial.Transform
	Body      *physics.Body
}

// Pose returns the object's current pose.
func (o *Object) Pose() spatial.Transform {
	if o.Body != nil {
		return o.Body.Pose
	}
	return o.Transform
}

// Animate advances the object over one substep. Static objects hold
// still.
func (o *Object) Animate(tStart, tEnd float64) {
	if o.Body != nil {
		o.Body.Advance(tStart, tEnd)
	}
}
