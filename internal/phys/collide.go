package phys

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box contacts are resolved in the ground (XZ) plane: dynamic bodies in
// this world only ever rotate about Y, and static geometry is axis
// aligned, so a 2D separating-axis test over the four face normals is
// exact for the shapes we simulate.

type vec2 struct{ x, z float64 }

func (v vec2) dot(o vec2) float64 { return v.x*o.x + v.z*o.z }

// resolveBoxBox pushes dynamic body b out of static box s and applies a
// contact impulse along the minimum translation axis.
func resolveBoxBox(b, s *Body) {
	// Vertical extents must overlap at all.
	if b.Position.Y()-b.HalfExtents.Y() > s.Position.Y()+s.HalfExtents.Y() ||
		b.Position.Y()+b.HalfExtents.Y() < s.Position.Y()-s.HalfExtents.Y() {
		return
	}

	yaw := yawOf(b.Orientation)
	cy, sy := math.Cos(yaw), math.Sin(yaw)

	// Body axes in the plane (local +X forward, +Z right), rotated about +Y.
	axB := [2]vec2{{cy, -sy}, {sy, cy}}
	// Static box is axis aligned.
	axS := [2]vec2{{1, 0}, {0, 1}}

	hbB := [2]float64{b.HalfExtents.X(), b.HalfExtents.Z()}
	hbS := [2]float64{s.HalfExtents.X(), s.HalfExtents.Z()}

	l := vec2{s.Position.X() - b.Position.X(), s.Position.Z() - b.Position.Z()}

	minOverlap := math.MaxFloat64
	var normal vec2
	for _, axis := range []vec2{axB[0], axB[1], axS[0], axS[1]} {
		projB := math.Abs(axB[0].dot(axis))*hbB[0] + math.Abs(axB[1].dot(axis))*hbB[1]
		projS := math.Abs(axS[0].dot(axis))*hbS[0] + math.Abs(axS[1].dot(axis))*hbS[1]
		overlap := projB + projS - math.Abs(l.dot(axis))
		if overlap <= 0 {
			return
		}
		if overlap < minOverlap {
			minOverlap = overlap
			normal = axis
		}
	}

	// Normal points from the static box toward the body.
	if l.dot(normal) > 0 {
		normal.x = -normal.x
		normal.z = -normal.z
	}

	// Positional correction.
	b.Position[0] += normal.x * minOverlap
	b.Position[2] += normal.z * minOverlap

	// Impulse: reflect the approach velocity along the contact normal.
	vn := b.Velocity.X()*normal.x + b.Velocity.Z()*normal.z
	if vn >= 0 {
		return
	}
	rest := (b.Material.Restitution + s.Material.Restitution) * 0.5
	j := -(1 + rest) * vn
	b.Velocity[0] += normal.x * j
	b.Velocity[2] += normal.z * j

	// Tangential friction scrubs speed along the wall.
	fric := (b.Material.Friction + s.Material.Friction) * 0.5
	tx, tz := -normal.z, normal.x
	vt := b.Velocity.X()*tx + b.Velocity.Z()*tz
	b.Velocity[0] -= tx * vt * fric * 0.5
	b.Velocity[2] -= tz * vt * fric * 0.5
}

// yawOf extracts the rotation about Y from a quaternion whose pitch and
// roll may be slightly non-zero from integration drift.
func yawOf(q mgl64.Quat) float64 {
	// Rotate the forward axis and measure its planar angle.
	f := q.Rotate(mgl64.Vec3{1, 0, 0})
	if f.X() == 0 && f.Z() == 0 {
		return 0
	}
	return math.Atan2(-f.Z(), f.X())
}

// YawQuat builds an orientation that is a pure rotation about Y.
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
}

// Yaw is the exported planar heading of a body orientation.
func Yaw(q mgl64.Quat) float64 { return yawOf(q) }
