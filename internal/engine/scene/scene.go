// Package scene owns the objects, cameras and lights of the tetherbox
// demo and advances them through simulation substeps.
package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasswing/tetherbox/internal/engine/camera"
	"github.com/glasswing/tetherbox/internal/engine/lighting"
	"github.com/glasswing/tetherbox/internal/engine/physics"
	"github.com/glasswing/tetherbox/internal/engine/primitive"
	"github.com/glasswing/tetherbox/internal/engine/spatial"
	"github.com/glasswing/tetherbox/internal/engine/surface"
	"github.com/glasswing/tetherbox/internal/engine/texture"
)

// Camera intrinsics shared by both viewports.
const (
	fieldOfView = 75 * math.Pi / 180
	nearPlane   = 1.0
	farPlane    = 20.0
)

// Body-local camera mount: the camera sits on the spring hook, looks
// along the body's local down and holds the body's local +x as up.
var (
	mountPoint = mgl64.Vec4{0, -0.5, 0, 1}
	mountLook  = mgl64.Vec4{0, -1, 0, 0}
	mountUp    = mgl64.Vec4{1, 0, 0, 0}
)

// Config sizes the scene at construction.
type Config struct {
	// Rows and Cols set the terrain tessellation grid.
	Rows, Cols int
	// Seed feeds the terrain noise phases; zero draws one from the clock.
	Seed int64
	// Aspect is the camera aspect ratio, window width over height.
	Aspect float64

	Body physics.Config
}

// DefaultConfig returns the demo scene as originally laid out.
func DefaultConfig() Config {
	return Config{
		Rows:   surface.DefaultResolution,
		Cols:   surface.DefaultResolution,
		Seed:   1,
		Aspect: 1,
		Body:   physics.DefaultConfig(),
	}
}

// Scene is the object list, the two cameras and the lights.
type Scene struct {
	objects []*Object
	body    *physics.Body

	worldCam camera.Camera
	bodyCam  camera.Camera

	lights []lighting.Light
}

// New builds the demo scene: a rippling terrain sheet, the tethered box
// hanging dormant above it, one directional light and the two cameras.
func New(cfg Config) *Scene {
	if cfg.Rows <= 0 {
		cfg.Rows = surface.DefaultResolution
	}
	if cfg.Cols <= 0 {
		cfg.Cols = surface.DefaultResolution
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	shared := Material{
		Diffuse:   mgl64.Vec3{0.6, 0.6, 0.6},
		Specular:  mgl64.Vec3{0.2, 0.2, 0.2},
		Ambient:   mgl64.Vec3{1, 1, 1},
		Shininess: 10,
	}
	checker := texture.Checker(4, 8)

	terrain := &Object{
		Material: shared,
		Shader:   ShaderTerrain,
		Texture:  checker,
		Surface:  surface.Tessellate(surface.NewTerrain(rng), cfg.Rows, cfg.Cols),
		Transform: spatial.Transform{
			Scale:        mgl64.Vec3{15, 1, 15},
			Translation:  mgl64.Vec3{0, -5, 0},
			RotationAxis: mgl64.Vec3{0, 1, 0},
		},
	}

	body := physics.NewBody(spatial.Transform{
		Scale:        mgl64.Vec3{1, 1.5, 0.5},
		Translation:  mgl64.Vec3{0, 5, 0},
		RotationAxis: mgl64.Vec3{0, 0, 1},
	}, cfg.Body)

	box := &Object{
		Material: shared,
		Shader:   ShaderPhong,
		Texture:  checker,
		Solid:    primitive.Box(),
		Body:     body,
	}

	s := &Scene{
		objects: []*Object{terrain, box},
		body:    body,
		worldCam: camera.Camera{
			Eye:    mgl64.Vec3{0, 0, 10},
			LookAt: mgl64.Vec3{0, 1, 0},
			Up:     mgl64.Vec3{0, 1, 0},
			FOV:    fieldOfView,
			Aspect: cfg.Aspect,
			Near:   nearPlane,
			Far:    farPlane,
		},
		bodyCam: camera.Camera{
			FOV:    fieldOfView,
			Aspect: cfg.Aspect,
			Near:   nearPlane,
			Far:    farPlane,
		},
		lights: []lighting.Light{
			lighting.Directional(
				mgl64.Vec3{5, 5, 4},
				mgl64.Vec3{0.1, 0.1, 0.1},
				mgl64.Vec3{1, 1, 1},
			),
		},
	}
	s.updateBodyCamera()
	return s
}

// Activate delivers the one-shot start signal to the body.
func (s *Scene) Activate() { s.body.Activate() }

// Animate advances every object over one substep, then re-derives both
// camera frames for the substep's end time.
func (s *Scene) Animate(tStart, tEnd float64) {
	for _, o := range s.objects {
		o.Animate(tStart, tEnd)
	}
	s.worldCam.Eye = mgl64.Vec3{10 * math.Sin(tEnd / 5), 0, 10 * math.Cos(tEnd / 5)}
	s.updateBodyCamera()
}

// updateBodyCamera mounts the second camera on the body. It reads the
// body's cached matrices, so the frame trails the pose by one substep.
func (s *Scene) updateBodyCamera() {
	m, minv := s.body.Model(), s.body.ModelInverse()
	eye := m.Mul4x1(mountPoint).Vec3()
	s.bodyCam.Eye = eye
	s.bodyCam.LookAt = eye.Add(minv.Mul4x1(mountLook).Vec3())
	s.bodyCam.Up = minv.Mul4x1(mountUp).Vec3()
}

// Objects returns the renderables in draw order.
func (s *Scene) Objects() []*Object { return s.objects }

// Lights returns the light list, at most lighting.MaxLights long.
func (s *Scene) Lights() []lighting.Light { return s.lights }

// BodyCamera returns the camera riding the body.
func (s *Scene) BodyCamera() camera.Camera { return s.bodyCam }

// WorldCamera returns the orbiting outside camera.
func (s *Scene) WorldCamera() camera.Camera { return s.worldCam }
