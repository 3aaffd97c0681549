package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"driftcity/internal/phys"
)

// GenerateAll builds the city: border walls, one building per block with
// seeded size/color variation, the delivery slot list and the ground
// texture. Deterministic for a given seed.
func (w *World) GenerateAll() {
	w.Buildings = w.Buildings[:0]
	w.Slots = w.Slots[:0]

	w.addBorders()

	for bz := 0; bz+Pattern <= WorldDepth; bz += Pattern {
		for bx := 0; bx+Pattern <= WorldWidth; bx += Pattern {
			w.addBlock(bx, bz)
		}
	}

	w.paintGround()
}

// addBlock places a building inside the block interior and a delivery
// slot on the sidewalk strip beside the road.
func (w *World) addBlock(bx, bz int) {
	h := hash2D(w.seed, bx, bz)
	r := NewRand(h)

	innerX := float64(bx + RoadWidth + SidewalkWidth)
	innerZ := float64(bz + RoadWidth + SidewalkWidth)

	// Building footprint: most of the inner lot, jittered per block.
	fw := float64(BlockInner) * r.RangeF(0.55, 0.85)
	fd := float64(BlockInner) * r.RangeF(0.55, 0.85)
	height := r.RangeF(6, 22)
	cx := innerX + float64(BlockInner)*0.5
	cz := innerZ + float64(BlockInner)*0.5

	body := phys.NewStaticBody(mgl64.Vec3{fw * 0.5, height * 0.5, fd * 0.5}, phys.Material{
		Friction:    0.4,
		Restitution: 0.2,
	})
	body.Position = mgl64.Vec3{cx, height * 0.5, cz}
	w.Phys.AddBody(body)

	// Per-block shade variation on top of the palette pick.
	shade := uint8(r.Range(205, 255))
	w.Buildings = append(w.Buildings, Building{
		Body:   body,
		Color:  Palette.Building[r.Intn(len(Palette.Building))].Mul(shade),
		Height: height,
	})

	// One slot per block, on the sidewalk at a jittered edge position.
	sx := innerX + float64(BlockInner)*r.RangeF(0.2, 0.8)
	sz := float64(bz+RoadWidth) + float64(SidewalkWidth)*0.5
	w.Slots = append(w.Slots, mgl64.Vec3{sx, 0, sz})
}

// addBorders walls off the world edge with four static boxes.
func (w *World) addBorders() {
	halfW := float64(WorldWidth) * 0.5
	halfD := float64(WorldDepth) * 0.5
	mat := phys.Material{Friction: 0.4, Restitution: 0.4}

	walls := []struct {
		pos  mgl64.Vec3
		half mgl64.Vec3
	}{
		{mgl64.Vec3{halfW, BorderHeight / 2, -BorderThickness / 2}, mgl64.Vec3{halfW + BorderThickness, BorderHeight / 2, BorderThickness / 2}},
		{mgl64.Vec3{halfW, BorderHeight / 2, float64(WorldDepth) + BorderThickness/2}, mgl64.Vec3{halfW + BorderThickness, BorderHeight / 2, BorderThickness / 2}},
		{mgl64.Vec3{-BorderThickness / 2, BorderHeight / 2, halfD}, mgl64.Vec3{BorderThickness / 2, BorderHeight / 2, halfD + BorderThickness}},
		{mgl64.Vec3{float64(WorldWidth) + BorderThickness/2, BorderHeight / 2, halfD}, mgl64.Vec3{BorderThickness / 2, BorderHeight / 2, halfD + BorderThickness}},
	}
	for _, wall := range walls {
		b := phys.NewStaticBody(wall.half, mat)
		b.Position = wall.pos
		w.Phys.AddBody(b)
	}
}

// paintGround rasterizes the road/sidewalk/lot layout into an RGBA image
// used as the ground texture, one texel per world unit.
func (w *World) paintGround() {
	w.ground = make([]uint8, WorldWidth*WorldDepth*4)
	for z := 0; z < WorldDepth; z++ {
		for x := 0; x < WorldWidth; x++ {
			col := Palette.Lot
			roadX := x%Pattern < RoadWidth
			roadZ := z%Pattern < RoadWidth
			switch {
			case roadX || roadZ:
				col = Palette.Road
				// Dashed center line on straight segments.
				if roadX != roadZ {
					if roadX && x%Pattern == RoadWidth/2 && z%4 < 2 {
						col = Palette.RoadLine
					}
					if roadZ && z%Pattern == RoadWidth/2 && x%4 < 2 {
						col = Palette.RoadLine
					}
				}
			case x%Pattern < RoadWidth+SidewalkWidth || z%Pattern < RoadWidth+SidewalkWidth ||
				x%Pattern >= Pattern-SidewalkWidth || z%Pattern >= Pattern-SidewalkWidth:
				col = Palette.Sidewalk
			}
			i := (z*WorldWidth + x) * 4
			w.ground[i+0] = col.R
			w.ground[i+1] = col.G
			w.ground[i+2] = col.B
			w.ground[i+3] = 255
		}
	}
}
