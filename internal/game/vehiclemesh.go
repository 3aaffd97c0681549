package game

import "github.com/go-gl/mathgl/mgl64"

// BuildVehicleMesh constructs the delivery car node hierarchy. The mesh
// origin sits at the rear axle, not the geometric center, so the physics
// body (centered on the bounding box) needs the offset correction on
// every visual sync.
func BuildVehicleMesh() *Node {
	root := NewNode("car")

	body := NewNode("body")
	body.Position = mgl64.Vec3{1.1, 0.55, 0}
	body.Size = mgl64.Vec3{2.6, 0.7, 1.3}
	body.Color = Palette.CarBody
	root.Add(body)

	cabin := NewNode("cabin")
	cabin.Position = mgl64.Vec3{0.9, 1.1, 0}
	cabin.Size = mgl64.Vec3{1.2, 0.5, 1.1}
	cabin.Color = Palette.CarCabin
	root.Add(cabin)

	wheels := NewNode("wheels")
	root.Add(wheels)
	for _, w := range []struct {
		name string
		x, z float64
	}{
		{"wheel_fl", 2.0, -0.7},
		{"wheel_fr", 2.0, 0.7},
		{"wheel_rl", 0.0, -0.7},
		{"wheel_rr", 0.0, 0.7},
	} {
		wheel := NewNode(w.name)
		wheel.Position = mgl64.Vec3{w.x, 0.3, w.z}
		wheel.Size = mgl64.Vec3{0.6, 0.6, 0.25}
		wheel.Color = Palette.Wheel
		wheels.Add(wheel)
	}

	return root
}
