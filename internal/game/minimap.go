package game

// DrawMinimap draws a corner overview map: city blocks, the vehicle and
// the current mission target. Uses the screen-space rect path, so it
// flushes with the HUD text.
func (r *Renderer) DrawMinimap(w *World, v *Vehicle, m *Mission, fbW, fbH int) {
	const mapW = 132.0
	scale := mapW / float64(WorldWidth)
	mapH := float64(WorldDepth) * scale
	ox := float64(fbW) - mapW - 16
	oy := 16.0

	r.DrawRect(ox-2, oy-2, mapW+4, mapH+4, RGB{R: 16, G: 18, B: 24}, 0.75)

	for i := range w.Buildings {
		b := &w.Buildings[i]
		p := b.Body.Position
		he := b.Body.HalfExtents
		r.DrawRect(
			ox+(p.X()-he.X())*scale, oy+(p.Z()-he.Z())*scale,
			he.X()*2*scale, he.Z()*2*scale,
			RGB{R: 70, G: 74, B: 86}, 0.9)
	}

	if m != nil {
		col := Palette.Pickup
		if m.State == MissionCarrying {
			col = Palette.Dropoff
		}
		t := m.Target()
		r.DrawRect(ox+t.X()*scale-2, oy+t.Z()*scale-2, 4, 4, col, 1)
	}

	if v != nil && v.Body() != nil {
		p := v.Position()
		r.DrawRect(ox+p.X()*scale-1.5, oy+p.Z()*scale-1.5, 3, 3, RGB{R: 255, G: 255, B: 255}, 1)
	}
}
