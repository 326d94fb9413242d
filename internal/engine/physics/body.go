// Package physics advances the spring-tethered rigid body with
// semi-implicit Euler integration of its linear and angular momentum.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasswing/tetherbox/internal/engine/spatial"
)

// Phase tells whether the body is integrating.
type Phase int

const (
	// Dormant bodies ignore Advance calls entirely. Bodies start dormant.
	Dormant Phase = iota
	// Active bodies integrate once per substep. There is no way back.
	Active
)

// Spring is the nonlinear tether: beyond its rest length it pulls the
// body's anchor point toward the fixed world anchor with force
// stiffness·d·(‖d‖−restLength); at or below the rest length it exerts no
// force at all.
type Spring struct {
	Anchor     mgl64.Vec3
	Stiffness  float64
	RestLength float64
}

// Config collects the simulation parameters of a body.
type Config struct {
	Mass            float64
	Gravity         mgl64.Vec3
	InitialVelocity mgl64.Vec3
	Drag            float64
	AngularDamping  float64
	Spring          Spring
	// LocalAnchor is the body-local point the spring hooks into.
	LocalAnchor mgl64.Vec3
}

// DefaultConfig returns the demo body: unit mass on a slack three-unit
// tether, nudged sideways and pulled down.
func DefaultConfig() Config {
	return Config{
		Mass:            1,
		Gravity:         mgl64.Vec3{0, -5, 0},
		InitialVelocity: mgl64.Vec3{1, 0, 0},
		Drag:            0.3,
		AngularDamping:  0.3,
		Spring: Spring{
			Anchor:     mgl64.Vec3{0, 5, 0},
			Stiffness:  1,
			RestLength: 3,
		},
		LocalAnchor: mgl64.Vec3{0, -0.5, 0},
	}
}

// Body is the simulated rigid body. All state is mutated exclusively by
// Advance, on a single thread; rotation is restricted to the pose's fixed
// axis. Numeric blow-up under extreme parameters propagates as non-finite
// values, never as errors.
type Body struct {
	Pose spatial.Transform

	Mass            float64
	Gravity         mgl64.Vec3
	Velocity        mgl64.Vec3
	Drag            float64
	AngularVelocity mgl64.Vec3
	AngularDamping  float64
	Spring          Spring
	LocalAnchor     mgl64.Vec3

	phase Phase

	// Model matrices captured at the top of the most recent active step;
	// the co-moving camera reads these, one substep behind the pose.
	model    mgl64.Mat4
	modelInv mgl64.Mat4
}

// NewBody builds a dormant body at the given pose. The matrix cache
// starts from the initial pose so camera derivation is defined before the
// first active step.
func NewBody(pose spatial.Transform, cfg Config) *Body {
	return &Body{
		Pose:            pose,
		Mass:            cfg.Mass,
		Gravity:         cfg.Gravity,
		Velocity:        cfg.InitialVelocity,
		Drag:            cfg.Drag,
		AngularVelocity: mgl64.Vec3{},
		AngularDamping:  cfg.AngularDamping,
		Spring:          cfg.Spring,
		LocalAnchor:     cfg.LocalAnchor,
		model:           pose.Matrix(),
		modelInv:        pose.Inverse(),
	}
}

// Phase reports whether the body is dormant or active.
func (b *Body) Phase() Phase { return b.phase }

// Activate switches the body to active. Idempotent.
func (b *Body) Activate() { b.phase = Active }

// Model returns the model matrix cached at the top of the last active
// step (the initial pose while dormant).
func (b *Body) Model() mgl64.Mat4 { return b.model }

// ModelInverse returns the inverse companion of Model.
func (b *Body) ModelInverse() mgl64.Mat4 { return b.modelInv }

// Advance integrates the body over [tStart, tEnd]. Calls must come in
// increasing time order; each call's output state is the next call's
// input. Dormant bodies are left bitwise untouched.
func (b *Body) Advance(tStart, tEnd float64) {
	if b.phase != Active {
		return
	}
	b.model = b.Pose.Matrix()
	b.modelInv = b.Pose.Inverse()
	// World-space spring hook on the body, from the pre-step pose.
	hook := b.model.Mul4x1(b.LocalAnchor.Vec4(1)).Vec3()

	dt := tEnd - tStart

	// Position advances with the pre-update velocity.
	b.Pose.Translation = b.Pose.Translation.Add(b.Velocity.Mul(dt))

	// The spring force starts at zero every step; a slack spring pulls
	// nothing, it never reuses the previous step's force.
	var spring mgl64.Vec3
	d := b.Spring.Anchor.Sub(hook)
	if stretch := d.Len() - b.Spring.RestLength; stretch > 0 {
		spring = d.Mul(b.Spring.Stiffness * stretch)
	}
	force := b.Gravity.Mul(b.Mass).Add(spring).Sub(b.Velocity.Mul(b.Drag))
	momentum := b.Velocity.Mul(b.Mass).Add(force.Mul(dt))
	b.Velocity = momentum.Mul(1 / b.Mass)

	// Thin-plate moment of inertia about the rotation axis.
	inertia := b.Mass * (b.Pose.Scale.X()*b.Pose.Scale.X() + b.Pose.Scale.Y()*b.Pose.Scale.Y()) / 12
	torque := hook.Sub(b.Pose.Translation).Cross(spring).
		Sub(b.AngularVelocity.Mul(b.AngularDamping))
	angular := b.AngularVelocity.Mul(inertia).Add(torque.Mul(dt))
	b.AngularVelocity = angular.Mul(1 / inertia)

	// Only the axis-aligned component of the angular velocity turns the
	// body; valid while the angular velocity stays collinear with the
	// axis.
	b.Pose.RotationAngle -= b.Pose.RotationAxis.Dot(b.AngularVelocity) * dt
}
