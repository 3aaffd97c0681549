package game

import "testing"

func TestParticlePoolCap(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	for i := 0; i < 20; i++ {
		ps.Add(Particle{MaxLife: 1})
	}
	if len(ps.P) != 8 {
		t.Errorf("pool holds %d, want capped at 8", len(ps.P))
	}
}

func TestParticleExpiryCompacts(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{MaxLife: 0.05})
	ps.Add(Particle{MaxLife: 10})

	for i := 0; i < 30; i++ {
		ps.Update(PhysicsStep)
	}
	if len(ps.P) != 1 {
		t.Fatalf("pool holds %d after expiry, want 1", len(ps.P))
	}
	if ps.P[0].MaxLife != 10 {
		t.Error("wrong particle survived")
	}
}

func TestParticleRenderDataSplitsPasses(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{MaxLife: 1, Kind: ParticleSmoke})
	ps.Add(Particle{MaxLife: 1, Kind: ParticleExhaust})
	ps.Add(Particle{MaxLife: 1, Kind: ParticleSpark})

	glow, norm := ps.RenderData(nil, nil)
	if len(norm) != 8 {
		t.Errorf("normal pass %d floats, want one smoke sprite (8)", len(norm))
	}
	if len(glow) != 16 {
		t.Errorf("glow pass %d floats, want exhaust+spark (16)", len(glow))
	}
}

func TestSpawnBurstRespectsCap(t *testing.T) {
	ps := NewParticleSystem(10, 1)
	ps.SpawnBurst(0, 0, Palette.Pickup, 50)
	if len(ps.P) != 10 {
		t.Errorf("burst filled %d, want the pool cap 10", len(ps.P))
	}
	ps.Clear()
	if len(ps.P) != 0 {
		t.Error("Clear left particles behind")
	}
}
