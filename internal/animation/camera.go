package animation

// Rig drifts the camera toward a scroll-dependent target. Targets are recomputed from the
// current fraction on each Step, and Step runs once per rendered frame, so the smoothing
// cadence does not depend on how often scroll events arrive.
type Rig struct {
	Params CameraParams
	Y      float32
	Z      float32
}

// NewRig returns a rig resting at height 0 and the given distance.
func NewRig(prm CameraParams, distance float32) *Rig {
	return &Rig{Params: prm, Z: distance}
}

// Target returns the height and distance the camera is heading for at fraction s.
func (r *Rig) Target(s, baseDistance float32) (y, z float32) {
	return s * r.Params.RiseY, baseDistance + s*r.Params.PushZ
}

// Step moves the camera Smoothing of the way toward the target for fraction s.
func (r *Rig) Step(s, baseDistance float32) {
	ty, tz := r.Target(s, baseDistance)
	r.Y += (ty - r.Y) * r.Params.Smoothing
	r.Z += (tz - r.Z) * r.Params.Smoothing
}

// Snap jumps the camera distance to baseDistance, leaving the height alone (used on resize).
func (r *Rig) Snap(baseDistance float32) {
	r.Z = baseDistance
}

// LookAt returns the fixed world point the camera faces for the given look-at height.
func (r *Rig) LookAt(lookAtY float32) [3]float32 {
	return [3]float32{0, lookAtY, r.Params.LookAtZ}
}
