package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("DRIFT_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	// City generation.
	world := NewWorld(seed)
	world.GenerateAll()

	// Renderer.
	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	groundPix, gw, gh := world.GroundTexture()
	rend.InitGroundTexture(groundPix, gw, gh)
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	session := NewSession()

	var vehicle *Vehicle
	var mission *Mission
	var ctrl Controls
	day := 0

	startDay := func() {
		if vehicle != nil && vehicle.Body() != nil {
			world.Phys.RemoveBody(vehicle.Body())
		}
		day++
		vehicle = NewVehicle(world.Phys, BuildVehicleMesh(), world.SpawnPoint(), 0)
		mission = NewMission(world.Slots, seed^(uint64(day)<<32))

		// Wrap the boost callback so the UI layer can hear denied starts.
		ctrl = vehicle.Controls()
		start := ctrl.StartBoost
		v := vehicle
		ctrl.StartBoost = func() {
			was := v.IsBoosting()
			start()
			if v.IsBoosting() && !was {
				PlaySound(SoundBoost)
			} else if !v.IsBoosting() {
				PlaySound(SoundBoostEmpty)
			}
		}

		particles.Clear()
		session.StartDay()
	}

	cam := Camera{
		X:    float64(WorldWidth) / 2,
		Z:    float64(WorldDepth) / 2,
		Zoom: DefaultZoom,
	}
	input := NewInput()

	// Reusable render buffers.
	var glowBuf, normBuf []float32
	var quadBuf []float32

	crashCooldown := 0.0
	accumulator := 0.0

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		glfw.PollEvents()
		fbW, fbH := window.GetFramebufferSize()

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		// Game time drives the sun; the menu idles on the wall clock.
		gameTime := now
		if session.State != StateMenu {
			gameTime = session.DayTimer
		}

		switch session.State {
		case StateMenu:
			if input.JustPressed(window, glfw.KeyEnter) {
				PlaySound(SoundMenuSelect)
				startDay()
			}
			particles.Update(dt)

		case StateDriving:
			input.ReadDriving(window, ctrl)
			UpdateCameraZoom(&cam, window, dt, fbW, fbH)
			if input.JustPressed(window, glfw.KeyH) {
				PlaySound(SoundHorn)
			}

			// Fixed-step simulation: render frames accumulate wall time
			// and run whole physics ticks, dropping leftover lag.
			accumulator += dt
			steps := 0
			for accumulator >= PhysicsStep && steps < MaxSubSteps {
				vehicle.ApplyForces()
				pre := vehicle.Speed()
				world.Phys.Step(PhysicsStep)
				vehicle.SyncVisual()
				vehicle.Update(PhysicsStep)

				// A hard speed loss in one tick means we hit something.
				if crashCooldown <= 0 && pre-vehicle.Speed() > 6.0 {
					cam.AddShake(0.4, 0.3)
					PlaySoundWithGain(SoundCrash, clampF((pre-vehicle.Speed())/15.0, 0.3, 1))
					crashCooldown = 0.4
				}

				switch mission.Update(PhysicsStep, vehicle.Position()) {
				case MissionPickedUp:
					PlaySound(SoundPickup)
					t := mission.Pickup
					particles.SpawnBurst(t.X(), t.Z(), Palette.Pickup, 24)
				case MissionDelivered:
					PlaySound(SoundDelivery)
					t := mission.Dropoff
					particles.SpawnBurst(t.X(), t.Z(), Palette.Dropoff, 32)
				}

				accumulator -= PhysicsStep
				steps++
			}
			if steps == MaxSubSteps {
				accumulator = 0
			}
			crashCooldown -= dt

			particles.SpawnVehicleTrail(vehicle, dt)
			particles.Update(dt)
			cam.Follow(vehicle, dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))
			cam.Clamp(fbW, fbH)

			session.Update(dt, mission)
			if session.State == StateDayComplete {
				PlaySound(SoundDayDone)
			}

		case StateDayComplete:
			if input.JustPressed(window, glfw.KeyEnter) {
				PlaySound(SoundMenuSelect)
				startDay()
			}
			particles.Update(dt)
		}

		// Render with shake applied.
		renderCam := cam
		renderCam.X, renderCam.Z = cam.EffectivePos()

		sunAmb, sunTR, sunTG, sunTB := SunCycleLight(gameTime)
		_, horizon := SkyGradient(gameTime)
		gl.ClearColor(
			float32(horizon.R)/255.0,
			float32(horizon.G)/255.0,
			float32(horizon.B)/255.0,
			1.0,
		)

		rend.BeginFrame(renderCam, fbW, fbH)
		rend.SetSunLight(sunAmb, sunTR, sunTG, sunTB)
		rend.DrawGround(renderCam, fbW, fbH)

		quadBuf = quadBuf[:0]
		quadBuf = AppendBorderQuads(quadBuf)
		quadBuf = AppendBuildingQuads(quadBuf, world, gameTime)
		if session.State != StateMenu {
			quadBuf = AppendVehicleQuads(quadBuf, vehicle)
			if session.State == StateDriving {
				quadBuf = AppendTargetArrowQuads(quadBuf, vehicle, mission)
			}
		}
		rend.DrawQuads(quadBuf, renderCam, fbW, fbH)

		// Dusk/night lights: streetlights, headlights, the mission marker.
		night := NightIntensityFromAmbient(sunAmb)
		if night > 0.01 {
			rend.DrawGlowSprites(streetlightSprites(night), renderCam, fbW, fbH)
		}
		if session.State == StateDriving {
			var markerBuf []float32
			markerBuf = AppendMarkerSprites(markerBuf, mission, now)
			markerBuf = AppendHeadlightSprites(markerBuf, vehicle, night)
			rend.DrawGlowSprites(markerBuf, renderCam, fbW, fbH)
		}

		// Particles: two passes (normal + glow).
		glowBuf, normBuf = particles.RenderData(glowBuf, normBuf)
		if len(normBuf) > 0 {
			rend.DrawSprites(normBuf, renderCam, fbW, fbH, false)
		}
		if len(glowBuf) > 0 {
			rend.SetSpriteAmbient(1.0, 1.0, 1.0, 1.0)
			rend.DrawSprites(glowBuf, renderCam, fbW, fbH, true)
			rend.SetSpriteAmbient(sunAmb, sunTR, sunTG, sunTB)
		}

		// HUD uses the stable camera (no shake).
		switch session.State {
		case StateMenu:
			rend.DrawMenu(session.Best, now, fbW, fbH)
		case StateDriving:
			rend.DrawDrivingHUD(vehicle, mission, gameTime, fbW, fbH)
			rend.DrawMinimap(world, vehicle, mission, fbW, fbH)
		case StateDayComplete:
			rend.DrawDayComplete(session, mission, now, fbW, fbH)
		}
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}
}

// streetlightCache avoids rebuilding the streetlight sprite buffer every
// frame. Brightness changes gradually; quantize to 1/200 steps.
var streetlightCache struct {
	brightness float32
	buf        []float32
}

// streetlightSprites returns radial glow sprites at road intersections.
// RGB is pre-multiplied by brightness for additive blending.
func streetlightSprites(brightness float32) []float32 {
	q := float32(int(brightness*200)) / 200.0
	if streetlightCache.buf != nil && streetlightCache.brightness == q {
		return streetlightCache.buf
	}
	buf := streetlightCache.buf[:0]
	warmR := 0.95 * q
	warmG := 0.78 * q
	warmB := 0.45 * q
	for z := 0; z+RoadWidth < WorldDepth; z += Pattern {
		for x := 0; x+RoadWidth < WorldWidth; x += Pattern {
			fx := float32(x + RoadWidth)
			fz := float32(z + RoadWidth)
			buf = append(buf, fx, fz, 9.0, warmR, warmG, warmB, 1, 0)
		}
	}
	streetlightCache.brightness = q
	streetlightCache.buf = buf
	return buf
}
