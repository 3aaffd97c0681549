package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"driftcity/internal/phys"
)

func TestCameraFollowConverges(t *testing.T) {
	pw := phys.NewWorld()
	v := NewVehicle(pw, BuildVehicleMesh(), mgl64.Vec3{100, 0.3, 80}, 0)
	cam := Camera{X: 10, Z: 10, Zoom: DefaultZoom}

	for i := 0; i < 300; i++ {
		cam.Follow(v, PhysicsStep)
	}

	pos := v.Position()
	if math.Abs(cam.X-pos.X()) > 1 || math.Abs(cam.Z-pos.Z()) > 1 {
		t.Errorf("camera at (%v, %v), vehicle at (%v, %v)", cam.X, cam.Z, pos.X(), pos.Z())
	}
}

func TestCameraLeadsVelocity(t *testing.T) {
	pw := phys.NewWorld()
	v := NewVehicle(pw, BuildVehicleMesh(), mgl64.Vec3{100, 0.3, 80}, 0)
	v.Body().Velocity = mgl64.Vec3{20, 0, 0}

	cam := Camera{X: v.Position().X(), Z: v.Position().Z(), Zoom: DefaultZoom}
	for i := 0; i < 300; i++ {
		cam.Follow(v, PhysicsStep)
	}
	if cam.X <= v.Position().X() {
		t.Errorf("camera x = %v, want ahead of the moving vehicle at %v", cam.X, v.Position().X())
	}
}

func TestCameraClampZoomBounds(t *testing.T) {
	cam := Camera{X: 0, Z: 0, Zoom: 1000}
	cam.Clamp(WindowWidth, WindowHeight)
	if cam.Zoom != MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", cam.Zoom, float64(MaxZoom))
	}
	cam.Zoom = 0.01
	cam.Clamp(WindowWidth, WindowHeight)
	if cam.Zoom != MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", cam.Zoom, float64(MinZoom))
	}
}

func TestCameraClampKeepsViewInWorld(t *testing.T) {
	cam := Camera{X: -500, Z: 1e6, Zoom: DefaultZoom}
	cam.Clamp(WindowWidth, WindowHeight)

	halfW := float64(WindowWidth) / (2 * cam.Zoom)
	halfH := float64(WindowHeight) / (2 * cam.Zoom)
	if cam.X-halfW < -1e-9 || cam.X+halfW > WorldWidth+1e-9 {
		t.Errorf("x view [%v, %v] outside world", cam.X-halfW, cam.X+halfW)
	}
	if cam.Z-halfH < -1e-9 || cam.Z+halfH > WorldDepth+1e-9 {
		t.Errorf("z view [%v, %v] outside world", cam.Z-halfH, cam.Z+halfH)
	}
}

func TestCameraShakeDecays(t *testing.T) {
	cam := Camera{Zoom: DefaultZoom}
	cam.AddShake(1.0, 0.3)
	cam.UpdateShake(PhysicsStep, 42)
	if cam.ShakeX == 0 && cam.ShakeZ == 0 {
		t.Error("shake produced no offset")
	}

	for i := 0; i < 60; i++ {
		cam.UpdateShake(PhysicsStep, 42)
	}
	if cam.ShakeX != 0 || cam.ShakeZ != 0 {
		t.Errorf("shake offsets (%v, %v) survived past the duration", cam.ShakeX, cam.ShakeZ)
	}
	sx, sz := cam.EffectivePos()
	if sx != cam.X || sz != cam.Z {
		t.Error("effective position differs with no shake active")
	}
}
