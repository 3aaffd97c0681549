package phys

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World steps a set of rigid bodies with gravity, damping and box contacts.
// The ground is an implicit infinite plane at y=0.
type World struct {
	Gravity mgl64.Vec3

	bodies []*Body
}

func NewWorld() *World {
	return &World{
		Gravity: mgl64.Vec3{0, -9.82, 0},
	}
}

func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by dt seconds: semi-implicit Euler
// integration of accumulated forces, then contact resolution.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if b.Static {
			continue
		}

		// Velocities from gravity and accumulated force/torque.
		invM := b.invMass()
		acc := w.Gravity.Add(b.force.Mul(invM))
		b.Velocity = b.Velocity.Add(acc.Mul(dt))

		invI := b.invInertia()
		b.AngularVelocity = b.AngularVelocity.Add(mgl64.Vec3{
			b.torque.X() * invI.X() * dt,
			b.torque.Y() * invI.Y() * dt,
			b.torque.Z() * invI.Z() * dt,
		})

		// Exponential damping, framerate independent at fixed dt.
		b.Velocity = b.Velocity.Mul(dampingFactor(b.LinearDamping, dt))
		b.AngularVelocity = b.AngularVelocity.Mul(dampingFactor(b.AngularDamping, dt))

		// Integrate position.
		b.Position = b.Position.Add(b.Velocity.Mul(dt))

		// Integrate orientation: q' = q + 0.5*dt*(w ⊗ q), renormalized.
		if b.AngularVelocity.LenSqr() > 0 {
			wq := mgl64.Quat{W: 0, V: b.AngularVelocity.Mul(0.5 * dt)}
			b.Orientation = b.Orientation.Add(wq.Mul(b.Orientation)).Normalize()
		}

		b.force = mgl64.Vec3{}
		b.torque = mgl64.Vec3{}
	}

	w.resolveContacts()
}

// dampingFactor returns the per-step velocity multiplier for a damping
// coefficient d in [0,1), matching (1-d)^dt.
func dampingFactor(d, dt float64) float64 {
	if d <= 0 {
		return 1
	}
	if d >= 1 {
		return 0
	}
	return math.Pow(1.0-d, dt)
}

func (w *World) resolveContacts() {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		w.resolveGround(b)
		for _, other := range w.bodies {
			if other == b || !other.Static {
				continue
			}
			resolveBoxBox(b, other)
		}
	}
}

// resolveGround clamps a body above the y=0 plane and kills downward
// velocity with the material restitution.
func (w *World) resolveGround(b *Body) {
	bottom := b.Position.Y() - b.HalfExtents.Y()
	if bottom >= 0 {
		return
	}
	b.Position[1] -= bottom
	if b.Velocity.Y() < 0 {
		b.Velocity[1] = -b.Velocity.Y() * b.Material.Restitution
		// Contact friction bleeds off a little planar speed.
		f := 1.0 - b.Material.Friction*0.02
		if f < 0 {
			f = 0
		}
		b.Velocity[0] *= f
		b.Velocity[2] *= f
	}
}
