package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"driftcity/internal/phys"
)

// Building is a static city block obstacle with its own physics body.
type Building struct {
	Body   *phys.Body
	Color  RGB
	Height float64
}

// World owns the static scene: the city layout, its physics bodies and
// the road-adjacent slots missions pick targets from.
type World struct {
	seed uint64

	Phys      *phys.World
	Buildings []Building
	Slots     []mgl64.Vec3 // delivery points, on sidewalks next to roads

	ground []uint8 // RGBA ground texture, 1 texel per world unit
}

func NewWorld(seed uint64) *World {
	return &World{
		seed: seed,
		Phys: phys.NewWorld(),
	}
}

// SpawnPoint returns the road intersection nearest the world center.
func (w *World) SpawnPoint() mgl64.Vec3 {
	x := float64(WorldWidth/2/Pattern*Pattern + RoadWidth/2)
	z := float64(WorldDepth/2/Pattern*Pattern + RoadWidth/2)
	return mgl64.Vec3{x, 0.3, z}
}

// GroundTexture returns the RGBA ground image and its dimensions.
func (w *World) GroundTexture() ([]uint8, int, int) {
	return w.ground, WorldWidth, WorldDepth
}

// IsRoad reports whether a world XZ position lies on the road grid.
func IsRoad(x, z float64) bool {
	return onRoadAxis(x) || onRoadAxis(z)
}

func onRoadAxis(v float64) bool {
	if v < 0 {
		return false
	}
	m := int(v) % Pattern
	return m < RoadWidth
}
