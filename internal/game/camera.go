package game

import "math"

// Camera looks straight down at the XZ plane and chases the vehicle.
type Camera struct {
	X, Z float64 // world units, camera centre
	Zoom float64 // screen pixels per world unit

	// Screen shake.
	ShakeX, ShakeZ float64
	ShakeTimer     float64
	ShakeIntensity float64
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeZ = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeZ = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Z + c.ShakeZ
}

// Follow eases the camera toward the vehicle with a velocity lead so the
// player sees more road in the direction of travel.
func (c *Camera) Follow(v *Vehicle, dt float64) {
	if v == nil || v.Body() == nil {
		return
	}
	pos := v.Position()
	vel := v.Body().Velocity
	lead := 0.6
	tx := pos.X() + vel.X()*lead
	tz := pos.Z() + vel.Z()*lead

	// Exponential smoothing, framerate independent.
	k := 1.0 - math.Exp(-4.0*dt)
	c.X += (tx - c.X) * k
	c.Z += (tz - c.Z) * k
}

func (c *Camera) Clamp(fbW, fbH int) {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}

	halfW := float64(fbW) / (2.0 * c.Zoom)
	halfH := float64(fbH) / (2.0 * c.Zoom)

	minX := halfW
	maxX := float64(WorldWidth) - halfW
	minZ := halfH
	maxZ := float64(WorldDepth) - halfH

	if minX > maxX {
		c.X = float64(WorldWidth) * 0.5
	} else {
		c.X = clampF(c.X, minX, maxX)
	}

	if minZ > maxZ {
		c.Z = float64(WorldDepth) * 0.5
	} else {
		c.Z = clampF(c.Z, minZ, maxZ)
	}
}
