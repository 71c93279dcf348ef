package scene

// Controls is an orbit control around the look-at point with damped rotation.
// With rotation, zoom and pan all disabled it never moves the camera; Update still runs every
// frame so the damping state stays current.
type Controls struct {
	Damping      float32
	EnableRotate bool
	EnableZoom   bool
	EnablePan    bool
	RotateSpeed  float32

	yaw      float32
	velocity float32
}

// DefaultControls returns the locked controls: damping 0.05, nothing enabled.
func DefaultControls() Controls {
	return Controls{Damping: 0.05, RotateSpeed: 0.005}
}

// Update feeds one frame of horizontal drag (pixels) into the controls.
func (c *Controls) Update(dragX float32) {
	if c.EnableRotate {
		c.velocity += dragX * c.RotateSpeed
	}
	c.yaw += c.velocity
	c.velocity *= 1 - c.Damping
}

// Yaw returns the accumulated rotation about the vertical axis, in radians.
func (c *Controls) Yaw() float32 {
	return c.yaw
}
