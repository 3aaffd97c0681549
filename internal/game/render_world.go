package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"driftcity/internal/phys"
)

// appendQuadRot appends one rotated rectangle (6 vertices) to the quad
// stream. cx/cz is the center, w/d the full footprint, yaw the rotation
// about the vertical axis.
func appendQuadRot(buf []float32, cx, cz, w, d, yaw float64, col RGB, alpha float64) []float32 {
	cy := math.Cos(yaw)
	sy := math.Sin(yaw)
	hw := w / 2
	hd := d / 2

	// Local (+x forward, +z right) corners to world. Rotation about the
	// vertical axis sends +x toward -z.
	px := func(lx, lz float64) (float32, float32) {
		wx := cx + lx*cy + lz*sy
		wz := cz - lx*sy + lz*cy
		return float32(wx), float32(wz)
	}
	x0, z0 := px(-hw, -hd)
	x1, z1 := px(hw, -hd)
	x2, z2 := px(hw, hd)
	x3, z3 := px(-hw, hd)

	r := float32(col.R) / 255
	g := float32(col.G) / 255
	b := float32(col.B) / 255
	a := float32(alpha)
	return append(buf,
		x0, z0, 0, 0, r, g, b, a,
		x1, z1, 1, 0, r, g, b, a,
		x2, z2, 1, 1, r, g, b, a,
		x0, z0, 0, 0, r, g, b, a,
		x2, z2, 1, 1, r, g, b, a,
		x3, z3, 0, 1, r, g, b, a,
	)
}

// sunShadowOffset returns the per-unit-height shadow displacement for the
// current game time. Shadows sweep west to east across the day and fade
// out at night.
func sunShadowOffset(gameTime float64) (dx, dz, strength float64) {
	phase := math.Mod(gameTime, DayCyclePeriod) / DayCyclePeriod
	sunHeight := math.Sin(phase * 2 * math.Pi)
	if sunHeight <= 0.05 {
		return 0, 0, 0
	}
	// Long shadows at the horizon, short at noon.
	length := 0.12 + 0.35*(1-sunHeight)
	dir := -math.Cos(phase * 2 * math.Pi)
	return dir * length, 0.18 * length, 0.35 * sunHeight
}

// AppendBuildingQuads draws every building as a drop shadow plus a lit
// roof slab, tallest last so roofs overlap their neighbours' shadows.
func AppendBuildingQuads(buf []float32, w *World, gameTime float64) []float32 {
	sdx, sdz, sstr := sunShadowOffset(gameTime)
	if sstr > 0 {
		for i := range w.Buildings {
			bld := &w.Buildings[i]
			p := bld.Body.Position
			he := bld.Body.HalfExtents
			buf = appendQuadRot(buf,
				p.X()+sdx*bld.Height, p.Z()+sdz*bld.Height,
				he.X()*2, he.Z()*2, 0,
				RGB{}, sstr)
		}
	}
	for i := range w.Buildings {
		bld := &w.Buildings[i]
		p := bld.Body.Position
		he := bld.Body.HalfExtents
		// Slight roof growth with height sells the top-down perspective.
		grow := 1.0 + bld.Height*0.006
		buf = appendQuadRot(buf,
			p.X(), p.Z(),
			he.X()*2*grow, he.Z()*2*grow, 0,
			bld.Color, 1)
	}
	return buf
}

// AppendBorderQuads draws the rim walls boxing in the city: a full slab
// per wall with a lighter inset top so the rim reads as raised.
func AppendBorderQuads(buf []float32) []float32 {
	halfW := float64(WorldWidth) * 0.5
	halfD := float64(WorldDepth) * 0.5
	long := float64(WorldWidth) + 4*BorderThickness
	deep := float64(WorldDepth) + 4*BorderThickness
	col := Palette.Border
	top := col.Add(14, 14, 12)

	walls := []struct{ cx, cz, w, d float64 }{
		{halfW, -BorderThickness / 2, long, BorderThickness},
		{halfW, float64(WorldDepth) + BorderThickness/2, long, BorderThickness},
		{-BorderThickness / 2, halfD, BorderThickness, deep},
		{float64(WorldWidth) + BorderThickness/2, halfD, BorderThickness, deep},
	}
	for _, wl := range walls {
		buf = appendQuadRot(buf, wl.cx, wl.cz, wl.w, wl.d, 0, col, 1)
		buf = appendQuadRot(buf, wl.cx, wl.cz, wl.w-0.8, wl.d-0.8, 0, top, 1)
	}
	return buf
}

// AppendNodeQuads projects a visual node tree onto the ground plane,
// drawing each sized node as a yawed rectangle.
func AppendNodeQuads(buf []float32, n *Node, parentPos mgl64.Vec3, parentRot mgl64.Quat) []float32 {
	if n == nil {
		return buf
	}
	pos := parentPos.Add(parentRot.Rotate(n.Position))
	rot := parentRot.Mul(n.Orientation)

	if n.Size.X() > 0 && n.Size.Z() > 0 {
		buf = appendQuadRot(buf, pos.X(), pos.Z(),
			n.Size.X(), n.Size.Z(), phys.Yaw(rot), n.Color, 1)
	}
	for _, c := range n.Children {
		buf = AppendNodeQuads(buf, c, pos, rot)
	}
	return buf
}

// AppendVehicleQuads draws the car: ground shadow first, then the node
// tree (body, cabin, wheels).
func AppendVehicleQuads(buf []float32, v *Vehicle) []float32 {
	if v == nil || v.Visual() == nil || v.Body() == nil {
		return buf
	}
	b := v.Body()
	he := b.HalfExtents
	buf = appendQuadRot(buf, b.Position.X()+0.2, b.Position.Z()+0.2,
		he.X()*2+0.3, he.Z()*2+0.3, v.Heading(), RGB{}, 0.3)

	root := v.Visual()
	// The root carries the synced transform; project children beneath it.
	return AppendNodeQuads(buf, root, mgl64.Vec3{}, mgl64.QuatIdent())
}

// AppendMarkerSprites adds the pulsing pickup/dropoff marker to the glow
// pass. t drives the pulse.
func AppendMarkerSprites(glowBuf []float32, m *Mission, t float64) []float32 {
	if m == nil {
		return glowBuf
	}
	target := m.Target()
	col := Palette.Pickup
	if m.State == MissionCarrying {
		col = Palette.Dropoff
	}
	pulse := 0.75 + 0.25*math.Sin(t*5)
	size := PickupRadius * 2 * pulse
	glowBuf = append(glowBuf,
		float32(target.X()), float32(target.Z()), float32(size),
		float32(col.R)/255*0.5, float32(col.G)/255*0.5, float32(col.B)/255*0.5, 1, 0,
		float32(target.X()), float32(target.Z()), float32(size*0.35),
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1, 0,
	)
	return glowBuf
}

// AppendTargetArrowQuads draws a small arrow orbiting the vehicle that
// points at the current mission target. Hidden once the target is close
// enough to see.
func AppendTargetArrowQuads(buf []float32, v *Vehicle, m *Mission) []float32 {
	if v == nil || v.Body() == nil || m == nil {
		return buf
	}
	pos := v.Position()
	target := m.Target()
	dx := target.X() - pos.X()
	dz := target.Z() - pos.Z()
	dist := math.Hypot(dx, dz)
	if dist < PickupRadius*3 {
		return buf
	}
	ang := math.Atan2(-dz, dx)

	col := Palette.Pickup
	if m.State == MissionCarrying {
		col = Palette.Dropoff
	}
	orbit := 3.5
	cx := pos.X() + math.Cos(ang)*orbit
	cz := pos.Z() - math.Sin(ang)*orbit
	buf = appendQuadRot(buf, cx, cz, 1.4, 0.5, ang, col, 0.9)
	tipX := cx + math.Cos(ang)*0.9
	tipZ := cz - math.Sin(ang)*0.9
	buf = appendQuadRot(buf, tipX, tipZ, 0.5, 1.0, ang, col, 0.9)
	return buf
}

// AppendHeadlightSprites adds two forward light cones to the glow pass,
// scaled by the night factor.
func AppendHeadlightSprites(glowBuf []float32, v *Vehicle, night float32) []float32 {
	if v == nil || v.Body() == nil || night <= 0 {
		return glowBuf
	}
	b := v.Body()
	heading := v.Heading()
	fx := math.Cos(heading)
	fz := -math.Sin(heading)
	rx := math.Sin(heading)
	rz := math.Cos(heading)

	ahead := 2.6
	spread := 0.6
	bright := float64(night) * 0.55
	for _, side := range []float64{-spread, spread} {
		lx := b.Position.X() + fx*ahead + rx*side
		lz := b.Position.Z() + fz*ahead + rz*side
		glowBuf = append(glowBuf,
			float32(lx), float32(lz), 4.5,
			float32(bright), float32(bright*0.95), float32(bright*0.75), 1, 0,
		)
	}
	return glowBuf
}
