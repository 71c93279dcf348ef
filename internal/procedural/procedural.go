// Package procedural builds the synthetic garage door used when the model cannot be used.
package procedural

// Options controls the generated door. Count panels of Width×Height×Depth are stacked on Y
// with no gaps; Gap is trimmed off each panel's mesh height so the seams stay visible.
type Options struct {
	Count  int     `yaml:"count"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Depth  float32 `yaml:"depth"`
	Gap    float32 `yaml:"gap"`

	Color     string  `yaml:"color"`
	Specular  string  `yaml:"specular"`
	Shininess float32 `yaml:"shininess"`
}

// DefaultOptions returns eight 20×3 slate panels, 0.1 deep.
func DefaultOptions() Options {
	return Options{
		Count:     8,
		Width:     20,
		Height:    3,
		Depth:     0.1,
		Gap:       0.05,
		Color:     "#1e293b",
		Specular:  "#475569",
		Shininess: 90,
	}
}

// Panel is one generated door slat. Position is its stacked resting position; Size is the mesh size.
type Panel struct {
	Index    int
	Position [3]float32
	Size     [3]float32
}

// GeneratePanels stacks opts.Count panels from the top down. Panel i rests at
// y = (count·h)/2 − i·h + h/2, so neighbours are exactly one panel height apart.
// Invalid sizes fall back to the defaults the same way mapgen sanitizes its options.
func GeneratePanels(opts Options) []Panel {
	def := DefaultOptions()
	if opts.Count <= 0 {
		opts.Count = def.Count
	}
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Depth <= 0 {
		opts.Depth = def.Depth
	}
	if opts.Gap < 0 || opts.Gap >= opts.Height {
		opts.Gap = 0
	}

	h := opts.Height
	top := float32(opts.Count)*h/2 + h/2
	panels := make([]Panel, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		panels = append(panels, Panel{
			Index:    i,
			Position: [3]float32{0, top - float32(i)*h, 0},
			Size:     [3]float32{opts.Width, h - opts.Gap, opts.Depth},
		})
	}
	return panels
}
