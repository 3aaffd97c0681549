package game

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"driftcity/internal/phys"
)

// Vehicle converts control inputs into forces and torques on a rigid body
// each fixed tick, then mirrors the body transform back onto the visual
// node graph with the stored physics/visual offset.
//
// The body is centered on the mesh bounding-box center, not the mesh
// origin, so the offset must be re-rotated by the current orientation
// every sync.
type Vehicle struct {
	body   *phys.Body
	visual *Node
	offset mgl64.Vec3 // mesh origin -> bbox center, mesh-local frame
	rig    WheelRig

	throttle float64 // signed target speed, units/s
	steering float64 // -1..1
	accel    float64 // smoothed throttle follower

	boost *Boost

	wheelSpin float64
	steerTilt float64 // smoothed front-wheel tilt, rad
}

// NewVehicle creates the physics body for a vehicle mesh and registers it
// with the world. The mesh keeps its own origin; the body is centered on
// the mesh bounding box.
func NewVehicle(pw *phys.World, mesh *Node, spawn mgl64.Vec3, yaw float64) *Vehicle {
	v := &Vehicle{
		visual: mesh,
		rig:    ResolveWheelRig(mesh),
		boost:  NewBoost(),
	}
	if mesh == nil {
		return v
	}

	box := mesh.BoundingBox()
	if box.Empty() {
		return v
	}
	v.offset = box.Center()

	rot := phys.YawQuat(yaw)
	body := phys.NewBody(VehicleMass, box.HalfExtents(), phys.Material{
		Friction:    VehicleFriction,
		Restitution: VehicleRestitution,
	})
	body.Position = spawn.Add(rot.Rotate(v.offset))
	body.Orientation = rot
	body.LinearDamping = VehicleLinDamping
	body.AngularDamping = VehicleAngDamping
	v.body = body
	pw.AddBody(body)

	mesh.Position = spawn
	mesh.Orientation = rot
	return v
}

// SetThrottle sets the signed target speed (units/s). The input layer
// scales key state to +/- ThrottleTarget.
func (v *Vehicle) SetThrottle(target float64) {
	v.throttle = target
}

// SetSteering sets the steering input, clamped to [-1, 1].
func (v *Vehicle) SetSteering(value float64) {
	v.steering = clampF(value, -1, 1)
}

func (v *Vehicle) StartBoost() { v.boost.Start() }
func (v *Vehicle) StopBoost()  { v.boost.Stop() }

// Controls returns the callback bundle the input layer drives.
func (v *Vehicle) Controls() Controls {
	return Controls{
		SetThrottle: v.SetThrottle,
		SetSteering: v.SetSteering,
		StartBoost:  v.StartBoost,
		StopBoost:   v.StopBoost,
	}
}

// ApplyForces runs the per-tick motion model. Call once per fixed step,
// before the physics world integrates.
func (v *Vehicle) ApplyForces() {
	b := v.body
	if b == nil || v.visual == nil {
		return
	}

	// Leveling: keep only the yaw component so collision impulses can
	// never tip the vehicle. Applied unconditionally every tick.
	b.Orientation = phys.YawQuat(phys.Yaw(b.Orientation))
	b.AngularVelocity[0] = 0
	b.AngularVelocity[2] = 0

	// First-order filter toward the throttle target: gradual buildup
	// instead of an instant force jump.
	v.accel += (v.throttle - v.accel) * AccelRate

	target := math.Abs(v.throttle)
	planar := mgl64.Vec3{b.Velocity.X(), 0, b.Velocity.Z()}
	speed := planar.Len()

	if target > InputDeadzone {
		// Drive along the body's forward axis.
		drive := v.accel * DriveForce
		if v.boost.Active() {
			drive *= BoostForceMult
		}
		b.ApplyForce(b.Forward().Mul(drive), b.Position)

		// Soft speed cap: counter-drag once past the throttle target, so
		// different throttle levels imply different top speeds.
		if speed > target {
			b.ApplyForce(planar.Mul(-DragCoeff), b.Position)
		}
	} else {
		// Idle: bleed the filter and coast down gently.
		v.accel *= IdleDecay
		b.ApplyForce(planar.Mul(-IdleFriction), b.Position)
	}

	// Lateral grip: oppose the sideways velocity component. Lower
	// GripCoeff slides more (arcade drift).
	right := b.Right()
	lat := right.Dot(b.Velocity)
	b.ApplyForce(right.Mul(-lat*GripCoeff), b.Position)

	// Damp small vertical jitter from the solver without touching real
	// falls.
	if math.Abs(b.Velocity.Y()) < VerticalDampSpeed {
		b.Velocity[1] *= VerticalDampFactor
	}

	// Turning: torque sign follows the signed throttle, so reversing
	// inverts which way the wheel turns the car.
	if math.Abs(v.steering) > SteerDeadzone && target > InputDeadzone {
		b.ApplyTorque(mgl64.Vec3{0, -v.steering * v.throttle * TurnTorque, 0})
	} else {
		// Proportional damper back toward straight travel.
		b.ApplyTorque(mgl64.Vec3{0, -b.AngularVelocity.Y() * CenterTorque, 0})
	}
}

// SyncVisual clamps the yaw rate and mirrors the body transform onto the
// visual node. Call after the physics world has stepped.
func (v *Vehicle) SyncVisual() {
	b := v.body
	if b == nil || v.visual == nil {
		return
	}

	if b.AngularVelocity.Y() > MaxAngularSpeed {
		b.AngularVelocity[1] = MaxAngularSpeed
	} else if b.AngularVelocity.Y() < -MaxAngularSpeed {
		b.AngularVelocity[1] = -MaxAngularSpeed
	}

	v.visual.Orientation = b.Orientation
	v.visual.Position = b.Position.Sub(b.Orientation.Rotate(v.offset))
}

// Update advances non-physics state: boost resource and wheel animation.
func (v *Vehicle) Update(dt float64) {
	v.boost.Update(dt)
	v.animateWheels(dt)
}

func (v *Vehicle) animateWheels(dt float64) {
	if v.rig.Kind == WheelRigNone || v.body == nil {
		return
	}
	// Spin with forward speed; the steer tilt eases toward the input so
	// the front wheels swing instead of snapping.
	fwd := v.body.Forward().Dot(v.body.Velocity)
	v.wheelSpin += fwd * dt * 2.0
	v.steerTilt = approach(v.steerTilt, -v.steering*0.45, dt*4.0)
	spin := mgl64.QuatRotate(v.wheelSpin, mgl64.Vec3{0, 0, 1})
	steer := mgl64.QuatRotate(v.steerTilt, mgl64.Vec3{0, 1, 0})

	switch v.rig.Kind {
	case WheelRigNamed:
		v.rig.Node.Orientation = spin
	case WheelRigGrouped:
		for _, w := range v.rig.Wheels {
			if strings.HasPrefix(w.Name, "wheel_f") {
				w.Orientation = steer.Mul(spin)
			} else {
				w.Orientation = spin
			}
		}
	}
}

// Speed returns the planar (ground) speed in units/s.
func (v *Vehicle) Speed() float64 {
	if v.body == nil {
		return 0
	}
	return math.Hypot(v.body.Velocity.X(), v.body.Velocity.Z())
}

// Heading returns the yaw angle in radians.
func (v *Vehicle) Heading() float64 {
	if v.body == nil {
		return 0
	}
	return phys.Yaw(v.body.Orientation)
}

// Position returns the physics body position (bounding-box center).
func (v *Vehicle) Position() mgl64.Vec3 {
	if v.body == nil {
		return mgl64.Vec3{}
	}
	return v.body.Position
}

func (v *Vehicle) BoostAmount() float64 { return v.boost.Amount() }
func (v *Vehicle) MaxBoost() float64    { return v.boost.Max() }
func (v *Vehicle) IsBoosting() bool     { return v.boost.Active() }

// Body exposes the rigid body for camera lead and effects.
func (v *Vehicle) Body() *phys.Body { return v.body }

// Visual exposes the synced node for rendering.
func (v *Vehicle) Visual() *Node { return v.visual }
