package animation

// Params controls how scroll fraction maps to panel depth.
// Stagger is the scroll fraction by which each panel starts later than the previous one.
type Params struct {
	Stagger  float32 `yaml:"stagger"`
	Speed    float32 `yaml:"speed"`
	Retract  float32 `yaml:"retract"`
	Distance float32 `yaml:"distance"`
}

// DefaultParams returns the stagger/easing constants of the door opening (12% stagger, 8 units of travel).
func DefaultParams() Params {
	return Params{
		Stagger:  0.12,
		Speed:    1.5,
		Retract:  1.2,
		Distance: 8,
	}
}

// CameraParams controls the scroll-coupled camera drift.
// Smoothing is the share of the remaining distance covered per rendered frame.
type CameraParams struct {
	Smoothing float32 `yaml:"smoothing"`
	RiseY     float32 `yaml:"rise_y"`
	PushZ     float32 `yaml:"push_z"`
	LookAtZ   float32 `yaml:"look_at_z"`
}

// DefaultCameraParams returns the camera drift constants (5% per frame, up 3, back 8).
func DefaultCameraParams() CameraParams {
	return CameraParams{
		Smoothing: 0.05,
		RiseY:     3,
		PushZ:     8,
		LookAtZ:   5,
	}
}
