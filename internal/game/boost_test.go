package game

import "testing"

func TestBoostStartStop(t *testing.T) {
	b := NewBoost()
	if b.Active() {
		t.Fatal("boost active before Start")
	}
	b.Start()
	if !b.Active() {
		t.Fatal("Start did not activate a full boost")
	}
	b.Stop()
	if b.Active() {
		t.Fatal("Stop left the boost active")
	}
}

func TestBoostDrainForcesStop(t *testing.T) {
	b := NewBoost()
	b.Start()

	// Full tank drains in BoostMax/BoostDrain seconds of ticks.
	ticks := int(BoostMax / BoostDrain / PhysicsStep)
	for i := 0; i < ticks; i++ {
		b.Update(PhysicsStep)
	}
	if b.Amount() > 1e-9 {
		t.Errorf("amount = %v after full drain window", b.Amount())
	}
	if b.Active() {
		t.Error("boost still active on an empty tank")
	}
}

func TestBoostDeniedWhenEmpty(t *testing.T) {
	b := NewBoost()
	b.Start()
	for b.Amount() > 0 {
		b.Update(PhysicsStep)
	}

	b.Start()
	if b.Active() {
		t.Error("Start succeeded on an empty tank")
	}
}

func TestBoostRefillsWhileIdle(t *testing.T) {
	b := NewBoost()
	b.Start()
	for b.Amount() > 0 {
		b.Update(PhysicsStep)
	}

	// Refill is slower than drain.
	refillTicks := int(BoostMax / BoostRefill / PhysicsStep)
	for i := 0; i < refillTicks; i++ {
		b.Update(PhysicsStep)
	}
	if b.Amount() < BoostMax-1e-6 {
		t.Errorf("amount = %v, want refilled to %v", b.Amount(), float64(BoostMax))
	}

	// And it never overshoots.
	b.Update(1)
	if b.Amount() > BoostMax {
		t.Errorf("amount = %v overshot the cap", b.Amount())
	}
}

func TestBoostFractionBounds(t *testing.T) {
	b := NewBoost()
	if b.Fraction() != 1 {
		t.Errorf("full fraction = %v, want 1", b.Fraction())
	}
	b.Start()
	b.Update(BoostMax / BoostDrain / 2)
	if f := b.Fraction(); f < 0.49 || f > 0.51 {
		t.Errorf("half-drained fraction = %v", f)
	}
}
