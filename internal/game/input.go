package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys  map[glfw.Key]bool
	boostHeld bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ReadDriving polls WASD/arrows plus shift-boost and feeds the vehicle
// controls. Keyboard throttle snaps to the full signed target speed.
func (in *Input) ReadDriving(window *glfw.Window, ctrl Controls) {
	throttle := 0.0
	if window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press {
		throttle += 1
	}
	if window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press {
		throttle -= 1
	}

	steer := 0.0
	if window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press {
		steer += 1
	}
	if window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press {
		steer -= 1
	}

	if ctrl.SetThrottle != nil {
		ctrl.SetThrottle(throttle * ThrottleTarget)
	}
	if ctrl.SetSteering != nil {
		ctrl.SetSteering(steer)
	}

	boost := window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		window.GetKey(glfw.KeyRightShift) == glfw.Press
	if boost && !in.boostHeld && ctrl.StartBoost != nil {
		ctrl.StartBoost()
	}
	if !boost && in.boostHeld && ctrl.StopBoost != nil {
		ctrl.StopBoost()
	}
	in.boostHeld = boost
}

// UpdateCameraZoom handles E/R zoom only (no panning, the camera chases
// the car).
func UpdateCameraZoom(cam *Camera, window *glfw.Window, dt float64, fbW, fbH int) {
	zoomRate := 1.4
	if window.GetKey(glfw.KeyE) == glfw.Press {
		cam.Zoom *= math.Exp(zoomRate * dt)
	}
	if window.GetKey(glfw.KeyR) == glfw.Press {
		cam.Zoom *= math.Exp(-zoomRate * dt)
	}
	cam.Clamp(fbW, fbH)
}
