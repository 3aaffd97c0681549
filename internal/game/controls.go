package game

// Controls is the narrow write interface the input layer gets to drive a
// vehicle. Function fields keep the controller decoupled from GLFW so it
// can be exercised without a window.
type Controls struct {
	SetThrottle func(target float64)
	SetSteering func(value float64)
	StartBoost  func()
	StopBoost   func()
}
