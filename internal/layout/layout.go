package layout

// DefaultBreakpoint is the widest window (in pixels) that still uses the mobile profile.
const DefaultBreakpoint = 768

// Profile holds the fixed values the scene uses for one window class.
// All four are swapped together whenever the window crosses the breakpoint.
type Profile struct {
	Name           string     `yaml:"name"`
	CameraDistance float32    `yaml:"camera_distance"`
	ModelScale     float32    `yaml:"model_scale"`
	ModelPosition  [3]float32 `yaml:"model_position"`
	LookAtY        float32    `yaml:"look_at_y"`
}

// Profiles is the binary mobile/desktop split.
type Profiles struct {
	Breakpoint int     `yaml:"breakpoint"`
	Mobile     Profile `yaml:"mobile"`
	Desktop    Profile `yaml:"desktop"`
}

// Default returns the profiles used when no config overrides them.
// Mobile pulls the camera further back and shrinks the model so the whole door fits a narrow window.
func Default() Profiles {
	return Profiles{
		Breakpoint: DefaultBreakpoint,
		Mobile: Profile{
			Name:           "mobile",
			CameraDistance: 35,
			ModelScale:     15,
			ModelPosition:  [3]float32{0, -5, 10},
			LookAtY:        -5,
		},
		Desktop: Profile{
			Name:           "desktop",
			CameraDistance: 25,
			ModelScale:     25,
			ModelPosition:  [3]float32{0, -10, 5},
			LookAtY:        0,
		},
	}
}

// IsMobile reports whether width falls on the mobile side of the breakpoint (inclusive).
func (p Profiles) IsMobile(width int) bool {
	bp := p.Breakpoint
	if bp <= 0 {
		bp = DefaultBreakpoint
	}
	return width <= bp
}

// Select returns the profile for the given window width.
func (p Profiles) Select(width int) Profile {
	if p.IsMobile(width) {
		return p.Mobile
	}
	return p.Desktop
}
