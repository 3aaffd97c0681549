package game

import (
	"testing"
)

func TestWorldGenerationDeterministic(t *testing.T) {
	a := NewWorld(99)
	a.GenerateAll()
	b := NewWorld(99)
	b.GenerateAll()

	if len(a.Buildings) != len(b.Buildings) {
		t.Fatalf("building counts differ: %d vs %d", len(a.Buildings), len(b.Buildings))
	}
	for i := range a.Buildings {
		pa := a.Buildings[i].Body.Position
		pb := b.Buildings[i].Body.Position
		if pa != pb {
			t.Fatalf("building %d moved between runs: %v vs %v", i, pa, pb)
		}
		if a.Buildings[i].Color != b.Buildings[i].Color {
			t.Fatalf("building %d recolored between runs", i)
		}
	}
	if len(a.Slots) != len(b.Slots) {
		t.Fatalf("slot counts differ")
	}
}

func TestWorldSeedChangesLayout(t *testing.T) {
	a := NewWorld(1)
	a.GenerateAll()
	b := NewWorld(2)
	b.GenerateAll()

	same := 0
	for i := range a.Buildings {
		if a.Buildings[i].Body.Position == b.Buildings[i].Body.Position {
			same++
		}
	}
	if same == len(a.Buildings) {
		t.Error("different seeds produced an identical city")
	}
}

func TestWorldBlockCount(t *testing.T) {
	w := NewWorld(5)
	w.GenerateAll()

	wantBlocks := (WorldWidth / Pattern) * (WorldDepth / Pattern)
	if len(w.Buildings) != wantBlocks {
		t.Errorf("buildings = %d, want one per block (%d)", len(w.Buildings), wantBlocks)
	}
	if len(w.Slots) != wantBlocks {
		t.Errorf("slots = %d, want one per block (%d)", len(w.Slots), wantBlocks)
	}
}

func TestSlotsAreOffRoad(t *testing.T) {
	w := NewWorld(7)
	w.GenerateAll()
	for i, s := range w.Slots {
		if IsRoad(s.X(), s.Z()) {
			t.Errorf("slot %d at %v sits on a road", i, s)
		}
	}
}

func TestSpawnPointOnRoad(t *testing.T) {
	w := NewWorld(7)
	p := w.SpawnPoint()
	if !IsRoad(p.X(), p.Z()) {
		t.Errorf("spawn %v is not on a road", p)
	}
}

func TestBuildingsInsideBlocks(t *testing.T) {
	w := NewWorld(11)
	w.GenerateAll()
	for i := range w.Buildings {
		b := &w.Buildings[i]
		p := b.Body.Position
		he := b.Body.HalfExtents
		// Footprint must never spill onto the road grid.
		for _, corner := range [][2]float64{
			{p.X() - he.X(), p.Z() - he.Z()},
			{p.X() + he.X(), p.Z() - he.Z()},
			{p.X() - he.X(), p.Z() + he.Z()},
			{p.X() + he.X(), p.Z() + he.Z()},
		} {
			if IsRoad(corner[0], corner[1]) {
				t.Fatalf("building %d corner %v on road", i, corner)
			}
		}
		if !b.Body.Static {
			t.Fatalf("building %d body is not static", i)
		}
	}
}

func TestGroundTextureDimensions(t *testing.T) {
	w := NewWorld(3)
	w.GenerateAll()
	pix, gw, gh := w.GroundTexture()
	if gw != WorldWidth || gh != WorldDepth {
		t.Fatalf("texture %dx%d, want %dx%d", gw, gh, WorldWidth, WorldDepth)
	}
	if len(pix) != gw*gh*4 {
		t.Fatalf("pixel buffer %d, want %d", len(pix), gw*gh*4)
	}
	// Spawn texel is road-coloured.
	p := w.SpawnPoint()
	i := (int(p.Z())*gw + int(p.X())) * 4
	got := RGB{R: pix[i], G: pix[i+1], B: pix[i+2]}
	if got != Palette.Road && got != Palette.RoadLine {
		t.Errorf("spawn texel = %v, want road surface", got)
	}
}

func TestIsRoadPattern(t *testing.T) {
	cases := []struct {
		x, z float64
		want bool
	}{
		{0, 0, true},
		{RoadWidth - 0.5, 1, true},
		{RoadWidth + 0.5, RoadWidth + 0.5, false},
		{Pattern + 1, RoadWidth + SidewalkWidth + 2, true},
		{RoadWidth + SidewalkWidth + 2, RoadWidth + SidewalkWidth + 2, false},
		{-1, 0, true}, // z on road
		{-1, -1, false},
	}
	for _, tc := range cases {
		if got := IsRoad(tc.x, tc.z); got != tc.want {
			t.Errorf("IsRoad(%v, %v) = %v, want %v", tc.x, tc.z, got, tc.want)
		}
	}
}
