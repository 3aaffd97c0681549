package phys

import "github.com/go-gl/mathgl/mgl64"

// Material bundles the surface response parameters of a body.
type Material struct {
	Friction    float64
	Restitution float64
}

// Body is a rigid body with a box collision shape.
// Forces and torques accumulate between steps and are consumed by World.Step.
type Body struct {
	Mass        float64
	HalfExtents mgl64.Vec3
	Material    Material

	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	// Per-axis exponential damping, applied as (1-d)^dt each step.
	LinearDamping  float64
	AngularDamping float64

	Static bool

	force  mgl64.Vec3
	torque mgl64.Vec3
}

// NewBody creates a dynamic box body at rest.
func NewBody(mass float64, halfExtents mgl64.Vec3, mat Material) *Body {
	return &Body{
		Mass:        mass,
		HalfExtents: halfExtents,
		Material:    mat,
		Orientation: mgl64.QuatIdent(),
	}
}

// NewStaticBody creates an immovable box body (buildings, walls).
func NewStaticBody(halfExtents mgl64.Vec3, mat Material) *Body {
	return &Body{
		HalfExtents: halfExtents,
		Material:    mat,
		Orientation: mgl64.QuatIdent(),
		Static:      true,
	}
}

// ApplyForce accumulates a world-space force applied at a world-space point.
// A force through the center of mass produces no torque.
func (b *Body) ApplyForce(force, at mgl64.Vec3) {
	if b.Static {
		return
	}
	b.force = b.force.Add(force)
	arm := at.Sub(b.Position)
	b.torque = b.torque.Add(arm.Cross(force))
}

// ApplyTorque accumulates a world-space torque.
func (b *Body) ApplyTorque(t mgl64.Vec3) {
	if b.Static {
		return
	}
	b.torque = b.torque.Add(t)
}

// invMass returns 1/mass, or 0 for static/massless bodies.
func (b *Body) invMass() float64 {
	if b.Static || b.Mass <= 0 {
		return 0
	}
	return 1.0 / b.Mass
}

// invInertia returns the inverse of the solid-box moment of inertia
// about each principal axis. Zero for static bodies.
func (b *Body) invInertia() mgl64.Vec3 {
	if b.Static || b.Mass <= 0 {
		return mgl64.Vec3{}
	}
	ex := b.HalfExtents.X() * 2
	ey := b.HalfExtents.Y() * 2
	ez := b.HalfExtents.Z() * 2
	k := b.Mass / 12.0
	ix := k * (ey*ey + ez*ez)
	iy := k * (ex*ex + ez*ez)
	iz := k * (ex*ex + ey*ey)
	inv := mgl64.Vec3{}
	if ix > 0 {
		inv[0] = 1.0 / ix
	}
	if iy > 0 {
		inv[1] = 1.0 / iy
	}
	if iz > 0 {
		inv[2] = 1.0 / iz
	}
	return inv
}

// Forward returns the body's local +X axis in world space.
func (b *Body) Forward() mgl64.Vec3 {
	return b.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
}

// Right returns the body's local +Z axis in world space.
func (b *Body) Right() mgl64.Vec3 {
	return b.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}
