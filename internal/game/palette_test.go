package game

import "testing"

func TestRGBMul(t *testing.T) {
	c := RGB{R: 100, G: 200, B: 50}
	if got := c.Mul(255); got != c {
		t.Errorf("Mul(255) = %v, want identity", got)
	}
	if got := c.Mul(0); got != (RGB{}) {
		t.Errorf("Mul(0) = %v, want black", got)
	}
	half := c.Mul(127)
	if half.R > c.R/2+1 || half.G > c.G/2+1 || half.B > c.B/2+1 {
		t.Errorf("Mul(127) = %v, want roughly half of %v", half, c)
	}
}

func TestRGBAddSaturates(t *testing.T) {
	tests := []struct {
		name       string
		c          RGB
		dr, dg, db int
		want       RGB
	}{
		{"plain", RGB{10, 20, 30}, 5, 5, 5, RGB{15, 25, 35}},
		{"clamps high", RGB{250, 250, 250}, 20, 20, 20, RGB{255, 255, 255}},
		{"clamps low", RGB{3, 3, 3}, -10, -10, -10, RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Add(tt.dr, tt.dg, tt.db); got != tt.want {
				t.Errorf("Add(%d,%d,%d) = %v, want %v", tt.dr, tt.dg, tt.db, got, tt.want)
			}
		})
	}
}

func TestAppendBorderQuads(t *testing.T) {
	buf := AppendBorderQuads(nil)

	// Four walls, each a base slab plus an inset top, 6 verts of 8 floats.
	const perQuad = 6 * 8
	if len(buf) != 8*perQuad {
		t.Fatalf("buffer = %d floats, want %d", len(buf), 8*perQuad)
	}

	wantR := float32(Palette.Border.R) / 255
	if buf[4] != wantR {
		t.Errorf("base slab red = %v, want %v", buf[4], wantR)
	}
	// The inset top of each wall is lighter than the slab beneath it.
	if buf[perQuad+4] <= buf[4] {
		t.Errorf("top red %v not lighter than slab %v", buf[perQuad+4], buf[4])
	}
}

func TestBuildingShadeStaysInPalette(t *testing.T) {
	w := NewWorld(42)
	w.GenerateAll()
	for i := range w.Buildings {
		c := w.Buildings[i].Color
		darker := false
		for _, base := range Palette.Building {
			if c.R <= base.R && c.G <= base.G && c.B <= base.B {
				darker = true
				break
			}
		}
		if !darker {
			t.Fatalf("building %d color %v brighter than every palette entry", i, c)
		}
	}
}
