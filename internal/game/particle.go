package game

import "math"

// ParticleKind selects update behavior and render pass.
type ParticleKind int

const (
	ParticleSmoke ParticleKind = iota
	ParticleExhaust
	ParticleSpark
)

type Particle struct {
	X, Z    float64
	VX, VZ  float64
	Size    float64
	Life    float64
	MaxLife float64
	Col     RGB
	Kind    ParticleKind
}

// ParticleSystem is a fixed-capacity pool for short-lived ground effects:
// skid smoke, boost exhaust, delivery sparks.
type ParticleSystem struct {
	P   []Particle
	cap int
	rng *Rand
}

func NewParticleSystem(capacity int, seed uint64) *ParticleSystem {
	return &ParticleSystem{
		P:   make([]Particle, 0, capacity),
		cap: capacity,
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) >= ps.cap {
		return
	}
	p.Life = p.MaxLife
	ps.P = append(ps.P, p)
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

// Update ages particles and compacts the pool in place.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.P[:0]
	for i := range ps.P {
		p := ps.P[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Z += p.VZ * dt
		// Smoke drifts and expands, sparks slow hard.
		switch p.Kind {
		case ParticleSmoke:
			p.Size += dt * 1.2
			p.VX *= 1 - 0.8*dt
			p.VZ *= 1 - 0.8*dt
		case ParticleSpark:
			p.VX *= 1 - 3.0*dt
			p.VZ *= 1 - 3.0*dt
		}
		alive = append(alive, p)
	}
	ps.P = alive
}

// SpawnVehicleTrail emits exhaust while boosting and skid smoke while the
// lateral speed is high enough to squeal.
func (ps *ParticleSystem) SpawnVehicleTrail(v *Vehicle, dt float64) {
	if v == nil || v.Body() == nil {
		return
	}
	b := v.Body()
	heading := v.Heading()

	if v.IsBoosting() {
		back := -1.2
		bx := b.Position.X() + math.Cos(heading)*back
		bz := b.Position.Z() - math.Sin(heading)*back
		for i := 0; i < 2; i++ {
			ang := heading + math.Pi + ps.rng.RangeF(-0.3, 0.3)
			sp := ps.rng.RangeF(3, 7)
			ps.Add(Particle{
				X: bx, Z: bz,
				VX: math.Cos(ang) * sp, VZ: -math.Sin(ang) * sp,
				Size:    ps.rng.RangeF(0.3, 0.6),
				MaxLife: ps.rng.RangeF(0.2, 0.5),
				Col:     RGB{R: 255, G: uint8(120 + ps.rng.Range(0, 80)), B: 40},
				Kind:    ParticleExhaust,
			})
		}
	}

	lat := b.Right().Dot(b.Velocity)
	if math.Abs(lat) > 4.0 {
		ps.Add(Particle{
			X: b.Position.X() + ps.rng.RangeF(-0.5, 0.5), Z: b.Position.Z() + ps.rng.RangeF(-0.5, 0.5),
			VX: ps.rng.RangeF(-0.5, 0.5), VZ: ps.rng.RangeF(-0.5, 0.5),
			Size:    ps.rng.RangeF(0.5, 0.9),
			MaxLife: ps.rng.RangeF(0.4, 0.9),
			Col:     RGB{R: 160, G: 160, B: 160},
			Kind:    ParticleSmoke,
		})
	}
}

// SpawnBurst emits a radial spark burst (pickup/delivery feedback).
func (ps *ParticleSystem) SpawnBurst(x, z float64, col RGB, count int) {
	for i := 0; i < count; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		sp := ps.rng.RangeF(4, 12)
		ps.Add(Particle{
			X: x, Z: z,
			VX: math.Cos(ang) * sp, VZ: math.Sin(ang) * sp,
			Size:    ps.rng.RangeF(0.25, 0.5),
			MaxLife: ps.rng.RangeF(0.4, 0.8),
			Col:     col,
			Kind:    ParticleSpark,
		})
	}
}

// RenderData appends sprite data (x, z, size, r, g, b, a, rot) split into
// the normal and glow passes, reusing the provided buffers.
func (ps *ParticleSystem) RenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		a := float32(p.Life / p.MaxLife)
		entry := []float32{
			float32(p.X), float32(p.Z), float32(p.Size),
			float32(p.Col.R) / 255, float32(p.Col.G) / 255, float32(p.Col.B) / 255, a, 0,
		}
		if p.Kind == ParticleSmoke {
			normBuf = append(normBuf, entry...)
		} else {
			glowBuf = append(glowBuf, entry...)
		}
	}
	return glowBuf, normBuf
}
