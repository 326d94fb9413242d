package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxVec(t *testing.T, name string, got, want mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestNewBuildsDemoScene(t *testing.T) {
	s := New(DefaultConfig())

	objects := s.Objects()
	if len(objects) != 2 {
		t.Fatalf("object count = %d, want 2", len(objects))
	}

	terrain, box := objects[0], objects[1]
	if terrain.Surface == nil || terrain.Shader != ShaderTerrain {
		t.Errorf("first object is not the terrain sheet")
	}
	if terrain.Surface.Strips != 20 || terrain.Surface.VerticesPerStrip != 42 {
		t.Errorf("terrain grid = %dx%d vertices, want 20x42",
			terrain.Surface.Strips, terrain.Surface.VerticesPerStrip)
	}
	if box.Body == nil || len(box.Solid) != 36 || box.Shader != ShaderPhong {
		t.Errorf("second object is not the simulated box")
	}
	if terrain.Texture == nil || box.Texture == nil {
		t.Errorf("objects are missing their checker texture")
	}

	lights := s.Lights()
	if len(lights) != 1 {
		t.Fatalf("light count = %d, want 1", len(lights))
	}
	if lights[0].Position.W() != 0 {
		t.Errorf("light w = %v, want directional (0)", lights[0].Position.W())
	}
}

func TestNewPlacesCameras(t *testing.T) {
	s := New(DefaultConfig())

	world := s.WorldCamera()
	approxVec(t, "world eye", world.Eye, mgl64.Vec3{0, 0, 10})
	approxVec(t, "world look-at", world.LookAt, mgl64.Vec3{0, 1, 0})
	if math.Abs(world.FOV-75*math.Pi/180) > 1e-12 {
		t.Errorf("world FOV = %v, want 75 degrees", world.FOV)
	}

	// The mount point (0,-0.5,0) lands at (0,4.25,0) under the initial
	// pose; the look direction is local down over the 1.5 y scale.
	body := s.BodyCamera()
	approxVec(t, "body eye", body.Eye, mgl64.Vec3{0, 4.25, 0})
	approxVec(t, "body look-at", body.LookAt, mgl64.Vec3{0, 4.25 - 1/1.5, 0})
	approxVec(t, "body up", body.Up, mgl64.Vec3{1, 0, 0})
}

func TestNewDefaultsEmptyGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 0, 0

	s := New(cfg)
	if got := s.Objects()[0].Surface.Strips; got != 20 {
		t.Errorf("strips = %d, want the default 20", got)
	}
}

func TestAnimateDormantOrbitsWorldCameraOnly(t *testing.T) {
	s := New(DefaultConfig())
	before := s.Objects()[1].Body.Pose

	s.Animate(0, 0.1)

	if s.Objects()[1].Body.Pose != before {
		t.Errorf("dormant body moved")
	}
	approxVec(t, "body camera eye", s.BodyCamera().Eye, mgl64.Vec3{0, 4.25, 0})
	approxVec(t, "world camera eye", s.WorldCamera().Eye,
		mgl64.Vec3{10 * math.Sin(0.02), 0, 10 * math.Cos(0.02)})
}

func TestActivateReleasesBody(t *testing.T) {
	s := New(DefaultConfig())

	s.Activate()
	s.Animate(0, 0.1)

	pose := s.Objects()[1].Body.Pose
	if pose.Translation == (mgl64.Vec3{0, 5, 0}) {
		t.Errorf("active body did not move")
	}
}

// The body camera reads the matrices cached at the top of the step, so
// its frame trails the pose by one substep.
func TestBodyCameraTrailsPose(t *testing.T) {
	s := New(DefaultConfig())
	s.Activate()

	s.Animate(0, 0.1)
	approxVec(t, "eye after first substep", s.BodyCamera().Eye, mgl64.Vec3{0, 4.25, 0})

	s.Animate(0.1, 0.2)
	if got := s.BodyCamera().Eye; got == (mgl64.Vec3{0, 4.25, 0}) {
		t.Errorf("eye still at the mount's initial position after two substeps: %v", got)
	}
}
