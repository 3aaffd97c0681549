package game

import "math"

const (
	DayCyclePeriod = 120.0 // seconds of game time per full day/night cycle
	SunAmbientMin  = 0.35  // midnight ambient floor
	SunAmbientMax  = 1.00  // noon ambient
	SunNightStart  = 0.62  // ambient threshold where night lighting kicks in
)

// SunCycleLight computes ambient light level and color tint from game time.
// Returns ambient (SunAmbientMin..SunAmbientMax), and tint RGB multipliers.
func SunCycleLight(gameTime float64) (ambient, tintR, tintG, tintB float32) {
	phase := math.Mod(gameTime, DayCyclePeriod) / DayCyclePeriod // 0..1
	sunHeight := math.Sin(phase * 2 * math.Pi)                   // -1 (midnight) to 1 (noon)

	mid := float64(SunAmbientMin+SunAmbientMax) * 0.5
	amp := float64(SunAmbientMax-SunAmbientMin) * 0.5
	ambient = float32(mid + amp*sunHeight)

	// Warm orange tint near the horizon (sunrise/sunset).
	horizonFactor := 1.0 - math.Abs(sunHeight)
	warmth := horizonFactor * horizonFactor * 0.35
	tintR = float32(1.0 + warmth*0.4)
	tintG = float32(1.0 - warmth*0.15)
	tintB = float32(1.0 - warmth*0.5)

	// Cool blue shift deep into the night.
	if sunHeight < -0.3 {
		nightFactor := float32((-sunHeight - 0.3) / 0.7)
		tintR -= nightFactor * 0.08
		tintG -= nightFactor * 0.04
		tintB += nightFactor * 0.12
	}

	return
}

// NightIntensityFromAmbient maps ambient light to a 0..1 night factor:
// 0 at/above SunNightStart, 1 at SunAmbientMin. Drives headlights and
// street glow.
func NightIntensityFromAmbient(ambient float32) float32 {
	denom := float64(SunNightStart - SunAmbientMin)
	if denom <= 0 {
		return 0
	}
	return float32(clampF((float64(SunNightStart)-float64(ambient))/denom, 0, 1))
}

// SkyGradient returns the zenith and horizon colors for the current game
// time, blending day, dusk and night stops.
func SkyGradient(gameTime float64) (top, horizon RGB) {
	phase := math.Mod(gameTime, DayCyclePeriod) / DayCyclePeriod
	sunHeight := math.Sin(phase * 2 * math.Pi)

	dayTop := RGB{R: 92, G: 148, B: 228}
	dayHorizon := RGB{R: 180, G: 212, B: 240}
	duskTop := RGB{R: 70, G: 60, B: 110}
	duskHorizon := RGB{R: 240, G: 140, B: 70}
	nightTop := RGB{R: 8, G: 10, B: 26}
	nightHorizon := RGB{R: 24, G: 30, B: 54}

	switch {
	case sunHeight > 0.25:
		return dayTop, dayHorizon
	case sunHeight > -0.25:
		t := (0.25 - sunHeight) / 0.5
		return lerpRGB(dayTop, duskTop, t), lerpRGB(dayHorizon, duskHorizon, t)
	case sunHeight > -0.5:
		t := (-0.25 - sunHeight) / 0.25
		return lerpRGB(duskTop, nightTop, t), lerpRGB(duskHorizon, nightHorizon, t)
	default:
		return nightTop, nightHorizon
	}
}

// ClockString formats game time as an HH:MM day clock, with 06:00 at
// sunrise (phase 0).
func ClockString(gameTime float64) string {
	phase := math.Mod(gameTime, DayCyclePeriod) / DayCyclePeriod
	minutes := int(phase*24*60+6*60) % (24 * 60)
	h := minutes / 60
	m := minutes % 60
	return twoDigits(h) + ":" + twoDigits(m)
}

func twoDigits(v int) string {
	return string([]byte{byte('0' + v/10), byte('0' + v%10)})
}
