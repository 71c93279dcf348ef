package animation

// Transform is the part of a panel's transform the mapper is allowed to touch.
type Transform struct {
	Y    float32
	Z    float32
	RotZ float32
}

// Panel is one animatable door segment. Baseline is captured once when the panel is created
// and never changes; Current is overwritten on every scroll event.
// Meshes lists the model mesh indices drawn with this panel's transform (empty for procedural panels).
type Panel struct {
	Name     string
	Index    int
	Meshes   []int
	Baseline Transform
	Current  Transform
}

// NewPanel returns a panel resting at its baseline.
func NewPanel(name string, index int, meshes []int, baseline Transform) *Panel {
	return &Panel{
		Name:     name,
		Index:    index,
		Meshes:   meshes,
		Baseline: baseline,
		Current:  baseline,
	}
}

// Reset pins the panel exactly to its baseline.
func (p *Panel) Reset() {
	p.Current = p.Baseline
}

// Offset returns how far the panel currently is from its baseline.
func (p *Panel) Offset() Transform {
	return Transform{
		Y:    p.Current.Y - p.Baseline.Y,
		Z:    p.Current.Z - p.Baseline.Z,
		RotZ: p.Current.RotZ - p.Baseline.RotZ,
	}
}
