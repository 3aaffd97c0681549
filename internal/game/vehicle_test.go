package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"driftcity/internal/phys"
)

func newTestVehicle(t *testing.T) (*phys.World, *Vehicle) {
	t.Helper()
	pw := phys.NewWorld()
	v := NewVehicle(pw, BuildVehicleMesh(), mgl64.Vec3{50, 0.3, 50}, 0)
	if v.Body() == nil {
		t.Fatal("vehicle has no body")
	}
	return pw, v
}

func tick(pw *phys.World, v *Vehicle) {
	v.ApplyForces()
	pw.Step(PhysicsStep)
	v.SyncVisual()
	v.Update(PhysicsStep)
}

func TestLevelingRemovesTilt(t *testing.T) {
	pw, v := newTestVehicle(t)
	b := v.Body()

	yaw := 0.7
	tilt := mgl64.QuatRotate(0.4, mgl64.Vec3{0, 0, 1})
	b.Orientation = phys.YawQuat(yaw).Mul(tilt)
	b.AngularVelocity = mgl64.Vec3{3, 0.5, -2}

	tick(pw, v)

	fwd := b.Forward()
	if math.Abs(fwd.Y()) > 1e-9 {
		t.Errorf("forward axis still tilted: y = %v", fwd.Y())
	}
	if math.Abs(b.AngularVelocity.X()) > 1e-9 || math.Abs(b.AngularVelocity.Z()) > 1e-9 {
		t.Errorf("tilt spin survived: %v", b.AngularVelocity)
	}
	if diff := math.Abs(angDiff(phys.Yaw(b.Orientation), yaw)); diff > 0.05 {
		t.Errorf("leveling changed yaw by %v", diff)
	}
}

func TestThrottleDrivesForward(t *testing.T) {
	pw, v := newTestVehicle(t)
	v.SetThrottle(ThrottleTarget)

	for i := 0; i < 120; i++ {
		tick(pw, v)
	}

	b := v.Body()
	fwd := b.Forward().Dot(b.Velocity)
	if fwd < 5 {
		t.Errorf("forward speed = %v, want > 5 after 2s at full throttle", fwd)
	}
	lat := b.Right().Dot(b.Velocity)
	if math.Abs(lat) > 0.5 {
		t.Errorf("lateral speed = %v without steering", lat)
	}
	if math.Abs(v.Heading()) > 0.05 {
		t.Errorf("heading drifted to %v without steering", v.Heading())
	}
}

func TestReverseThrottleDrivesBackward(t *testing.T) {
	pw, v := newTestVehicle(t)
	v.SetThrottle(-ThrottleTarget)

	for i := 0; i < 120; i++ {
		tick(pw, v)
	}

	b := v.Body()
	if fwd := b.Forward().Dot(b.Velocity); fwd > -2 {
		t.Errorf("forward speed = %v, want well below zero in reverse", fwd)
	}
}

func TestSpeedSettlesUnderDrag(t *testing.T) {
	pw, v := newTestVehicle(t)
	v.SetThrottle(ThrottleTarget)

	// Run to steady state, then watch the last second for drift.
	for i := 0; i < 9*60; i++ {
		tick(pw, v)
	}
	minS, maxS := math.Inf(1), math.Inf(-1)
	for i := 0; i < 60; i++ {
		tick(pw, v)
		s := v.Speed()
		minS = math.Min(minS, s)
		maxS = math.Max(maxS, s)
	}

	if maxS-minS > 1.0 {
		t.Errorf("speed still oscillating: min %v max %v", minS, maxS)
	}
	if maxS < ThrottleTarget {
		t.Errorf("settled speed %v never reached the throttle target %v", maxS, float64(ThrottleTarget))
	}
	if maxS > 3*ThrottleTarget {
		t.Errorf("settled speed %v escaped the drag cap", maxS)
	}
}

func TestHalfThrottleSettlesSlower(t *testing.T) {
	pwFull, vFull := newTestVehicle(t)
	vFull.SetThrottle(ThrottleTarget)
	pwHalf, vHalf := newTestVehicle(t)
	vHalf.SetThrottle(ThrottleTarget / 2)

	for i := 0; i < 10*60; i++ {
		tick(pwFull, vFull)
		tick(pwHalf, vHalf)
	}

	if vHalf.Speed() >= vFull.Speed() {
		t.Errorf("half throttle speed %v >= full throttle speed %v", vHalf.Speed(), vFull.Speed())
	}
}

func TestThrottleDeadzoneIdles(t *testing.T) {
	pw, v := newTestVehicle(t)
	v.SetThrottle(InputDeadzone * 0.9)

	for i := 0; i < 120; i++ {
		tick(pw, v)
	}
	if s := v.Speed(); s > 0.1 {
		t.Errorf("speed = %v inside the input deadzone", s)
	}
}

func TestIdleCoastsToRest(t *testing.T) {
	pw, v := newTestVehicle(t)
	v.SetThrottle(ThrottleTarget)
	for i := 0; i < 3*60; i++ {
		tick(pw, v)
	}
	if v.Speed() < 5 {
		t.Fatalf("vehicle never got moving: %v", v.Speed())
	}

	v.SetThrottle(0)
	for i := 0; i < 5*60; i++ {
		tick(pw, v)
	}
	if s := v.Speed(); s > 1 {
		t.Errorf("speed = %v, want near rest after 5s of coasting", s)
	}
}

func TestSteeringTurnsAgainstSignedThrottle(t *testing.T) {
	cases := []struct {
		name     string
		throttle float64
		steering float64
		wantSign float64 // sign of heading change
	}{
		{"forward right", ThrottleTarget, 1, -1},
		{"forward left", ThrottleTarget, -1, 1},
		{"reverse right", -ThrottleTarget, 1, 1},
		{"reverse left", -ThrottleTarget, -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pw, v := newTestVehicle(t)
			v.SetThrottle(tc.throttle)
			v.SetSteering(tc.steering)
			for i := 0; i < 60; i++ {
				tick(pw, v)
			}
			delta := angDiff(0, v.Heading())
			if delta*tc.wantSign <= 0 {
				t.Errorf("heading delta = %v, want sign %v", delta, tc.wantSign)
			}
		})
	}
}

func TestSteeringDeadzoneCenters(t *testing.T) {
	pw, v := newTestVehicle(t)
	v.SetThrottle(ThrottleTarget)
	v.SetSteering(1)
	for i := 0; i < 60; i++ {
		tick(pw, v)
	}
	if math.Abs(v.Body().AngularVelocity.Y()) < 0.05 {
		t.Fatal("steering never produced a yaw rate")
	}

	// Inside the steering deadzone the centering damper takes over.
	v.SetSteering(SteerDeadzone / 2)
	for i := 0; i < 60; i++ {
		tick(pw, v)
	}
	if w := math.Abs(v.Body().AngularVelocity.Y()); w > 0.1 {
		t.Errorf("yaw rate = %v, want damped toward zero", w)
	}
}

func TestYawRateClamp(t *testing.T) {
	_, v := newTestVehicle(t)
	v.Body().AngularVelocity = mgl64.Vec3{0, 10, 0}
	v.SyncVisual()
	if w := v.Body().AngularVelocity.Y(); w != MaxAngularSpeed {
		t.Errorf("yaw rate = %v, want clamped to %v", w, float64(MaxAngularSpeed))
	}

	v.Body().AngularVelocity = mgl64.Vec3{0, -10, 0}
	v.SyncVisual()
	if w := v.Body().AngularVelocity.Y(); w != -MaxAngularSpeed {
		t.Errorf("yaw rate = %v, want clamped to %v", w, -float64(MaxAngularSpeed))
	}
}

func TestVisualOffsetRoundTrip(t *testing.T) {
	pw, v := newTestVehicle(t)
	mesh := v.Visual()
	offset := mesh.BoundingBox().Center()

	// The spawn transform must already satisfy the offset relation.
	spawn := mgl64.Vec3{50, 0.3, 50}
	if d := mesh.Position.Sub(spawn).Len(); d > 1e-9 {
		t.Errorf("mesh origin moved off spawn by %v", d)
	}

	// Drive a curve; the relation has to hold every tick.
	v.SetThrottle(ThrottleTarget)
	v.SetSteering(0.7)
	for i := 0; i < 240; i++ {
		tick(pw, v)
		b := v.Body()
		want := b.Position.Sub(b.Orientation.Rotate(offset))
		if d := mesh.Position.Sub(want).Len(); d > 1e-9 {
			t.Fatalf("tick %d: visual origin off by %v", i, d)
		}
		if mesh.Orientation != b.Orientation {
			t.Fatalf("tick %d: visual orientation diverged from body", i)
		}
	}
}

func TestBoostRaisesSpeed(t *testing.T) {
	pwPlain, plain := newTestVehicle(t)
	plain.SetThrottle(ThrottleTarget)
	pwBoost, boosted := newTestVehicle(t)
	boosted.SetThrottle(ThrottleTarget)
	boosted.StartBoost()

	for i := 0; i < 3*60; i++ {
		tick(pwPlain, plain)
		tick(pwBoost, boosted)
	}
	if !boosted.IsBoosting() {
		t.Fatal("boost drained before 3s")
	}
	if boosted.Speed() <= plain.Speed() {
		t.Errorf("boosted speed %v <= plain speed %v", boosted.Speed(), plain.Speed())
	}
}

func TestNilMeshVehicleIsInert(t *testing.T) {
	pw := phys.NewWorld()
	v := NewVehicle(pw, nil, mgl64.Vec3{}, 0)

	// All operations must be safe no-ops.
	v.SetThrottle(ThrottleTarget)
	v.SetSteering(1)
	v.ApplyForces()
	v.SyncVisual()
	v.Update(PhysicsStep)
	if v.Speed() != 0 || v.Heading() != 0 {
		t.Errorf("inert vehicle reported motion: speed %v heading %v", v.Speed(), v.Heading())
	}
}

func TestWheelAnimationOnlySteersFronts(t *testing.T) {
	pw, v := newTestVehicle(t)
	v.SetThrottle(ThrottleTarget)
	v.SetSteering(1)
	for i := 0; i < 60; i++ {
		tick(pw, v)
	}

	mesh := v.Visual()
	fl := mesh.Find("wheel_fl")
	rl := mesh.Find("wheel_rl")
	if fl == nil || rl == nil {
		t.Fatal("wheel nodes missing")
	}
	// Front wheels carry the steer rotation about the vertical axis.
	if fl.Orientation == rl.Orientation {
		t.Error("front wheel orientation matches rear under steering")
	}
}
