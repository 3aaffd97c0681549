package game

import (
	"fmt"
	"math"
)

// DrawRect buffers a solid screen-space rectangle through the text
// pipeline, sampling the solid cell of the font atlas.
func (r *Renderer) DrawRect(x, y, w, h float64, col RGB, alpha float64) {
	if r.textProg == 0 {
		return
	}
	// Center of the solid cell.
	u := (float32((FontCols-1)*FontCellW) + FontCellW/2) / FontAtlasW
	v := (float32((FontRows-1)*FontCellH) + FontCellH/2) / FontAtlasH

	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(alpha)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	r.textBuf = append(r.textBuf,
		x0, y0, u, v, cr, cg, cb, ca,
		x1, y0, u, v, cr, cg, cb, ca,
		x1, y1, u, v, cr, cg, cb, ca,
		x0, y0, u, v, cr, cg, cb, ca,
		x1, y1, u, v, cr, cg, cb, ca,
		x0, y1, u, v, cr, cg, cb, ca,
	)
}

// DrawBar draws a labelled fill bar with a thin outline.
func (r *Renderer) DrawBar(x, y, w, h, frac float64, col RGB) {
	frac = clampF(frac, 0, 1)
	r.DrawRect(x-1, y-1, w+2, h+2, RGB{R: 20, G: 20, B: 24}, 0.8)
	r.DrawRect(x, y, w*frac, h, col, 0.95)
}

// DrawDrivingHUD draws the in-game overlay: speed, boost, score, the
// delivery prompt with its time bonus, and the day clock.
func (r *Renderer) DrawDrivingHUD(v *Vehicle, m *Mission, gameTime float64, fbW, fbH int) {
	white := RGB{R: 235, G: 235, B: 235}
	dim := RGB{R: 160, G: 160, B: 170}

	// Bottom left: speed and boost.
	speedKMH := v.Speed() * 3.6
	r.DrawString(fmt.Sprintf("%3.0f KM/H", speedKMH), 16, float64(fbH)-58, 2, white, 1)
	boostCol := RGB{R: 80, G: 180, B: 255}
	if v.IsBoosting() {
		boostCol = RGB{R: 255, G: 170, B: 60}
	}
	r.DrawBar(16, float64(fbH)-28, 140, 10, v.BoostAmount()/v.MaxBoost(), boostCol)
	r.DrawString("BOOST", 162, float64(fbH)-30, 1.5, dim, 1)

	// Top left: score and deliveries.
	r.DrawString(fmt.Sprintf("SCORE %d", m.Score), 16, 14, 2, white, 1)
	r.DrawString(fmt.Sprintf("DELIVERED %d", m.Deliveries), 16, 36, 1.5, dim, 1)

	// Top center: clock.
	r.DrawStringCentered(ClockString(gameTime), float64(fbW)/2, 14, 2, white, 1)

	// Bottom center: mission prompt.
	switch m.State {
	case MissionAwaitingPickup:
		r.DrawStringCentered("PICK UP THE PACKAGE", float64(fbW)/2, float64(fbH)-80, 2, Palette.Pickup, 0.9)
	case MissionCarrying:
		prompt := "DELIVER"
		if m.TimeLeft > 0 {
			prompt = fmt.Sprintf("DELIVER  BONUS %ds", int(m.TimeLeft))
		}
		r.DrawStringCentered(prompt, float64(fbW)/2, float64(fbH)-80, 2, Palette.Dropoff, 0.9)
	}
}

// DrawMenu draws the title screen.
func (r *Renderer) DrawMenu(best int, blink float64, fbW, fbH int) {
	white := RGB{R: 235, G: 235, B: 235}
	dim := RGB{R: 160, G: 160, B: 170}
	cx := float64(fbW) / 2
	cy := float64(fbH) / 2

	r.DrawStringCentered("DRIFT COURIER", cx, cy-120, 5, RGB{R: 255, G: 200, B: 80}, 1)
	r.DrawStringCentered("DELIVER PACKAGES BEFORE SUNDOWN", cx, cy-60, 2, dim, 1)
	if math.Mod(blink, 1.0) < 0.6 {
		r.DrawStringCentered("PRESS ENTER TO START", cx, cy+10, 2.5, white, 1)
	}
	r.DrawStringCentered("WASD DRIVE  SHIFT BOOST  H HORN  E/R ZOOM", cx, cy+70, 1.5, dim, 1)
	if best > 0 {
		r.DrawStringCentered(fmt.Sprintf("BEST %d", best), cx, cy+110, 2, white, 1)
	}
}

// DrawDayComplete draws the end-of-day summary.
func (r *Renderer) DrawDayComplete(s *Session, m *Mission, blink float64, fbW, fbH int) {
	white := RGB{R: 235, G: 235, B: 235}
	cx := float64(fbW) / 2
	cy := float64(fbH) / 2

	r.DrawStringCentered("DAY COMPLETE", cx, cy-100, 4, RGB{R: 255, G: 200, B: 80}, 1)
	r.DrawStringCentered(fmt.Sprintf("SCORE %d", s.Score), cx, cy-30, 3, white, 1)
	r.DrawStringCentered(fmt.Sprintf("DELIVERIES %d", m.Deliveries), cx, cy+10, 2, white, 1)
	if s.Score >= s.Best && s.Score > 0 {
		r.DrawStringCentered("NEW BEST!", cx, cy+50, 2, RGB{R: 120, G: 255, B: 120}, 1)
	}
	if math.Mod(blink, 1.0) < 0.6 {
		r.DrawStringCentered("PRESS ENTER FOR A NEW DAY", cx, cy+100, 2, white, 1)
	}
}
