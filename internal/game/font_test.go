package game

import "testing"

func TestFontGlyphCoverage(t *testing.T) {
	needed := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789:.!?/-+%"
	for i := 0; i < len(needed); i++ {
		if _, ok := fontGlyphs[needed[i]]; !ok {
			t.Errorf("glyph %q missing from the font table", needed[i])
		}
	}
}

func TestFontAtlasLayout(t *testing.T) {
	pix := buildFontAtlas()
	if len(pix) != FontAtlasW*FontAtlasH*4 {
		t.Fatalf("atlas %d bytes, want %d", len(pix), FontAtlasW*FontAtlasH*4)
	}

	// 'A' cell has ink, the space cell has none.
	cell := func(ch byte) (set int) {
		idx := int(ch) - 32
		cx := (idx % FontCols) * FontCellW
		cy := (idx / FontCols) * FontCellH
		for y := 0; y < FontCellH; y++ {
			for x := 0; x < FontCellW; x++ {
				if pix[((cy+y)*FontAtlasW+cx+x)*4+3] != 0 {
					set++
				}
			}
		}
		return set
	}
	if cell('A') == 0 {
		t.Error("'A' cell is blank")
	}
	if cell(' ') != 0 {
		t.Error("space cell has ink")
	}
	// The solid cell backs DrawRect; it must be fully opaque.
	if got := cell(127); got != FontCellW*FontCellH {
		t.Errorf("solid cell has %d set texels, want %d", got, FontCellW*FontCellH)
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("ABC", 2); w != 3*FontCellW*2 {
		t.Errorf("width = %v, want %v", w, 3*FontCellW*2)
	}
	if w := TextWidth("", 1); w != 0 {
		t.Errorf("empty width = %v", w)
	}
}
