package animation

import "github.com/chewxy/math32"

// Mapper turns a scroll fraction into per-panel transforms. It keeps no memory between calls:
// the result depends only on the fraction and each panel's baseline.
type Mapper struct {
	Params Params
}

// NewMapper returns a mapper using prm.
func NewMapper(prm Params) *Mapper {
	return &Mapper{Params: prm}
}

// clamp01 limits v to [0,1]. NaN is returned unchanged so callers can treat it as "not started".
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Progress returns the raw progress p of panel index for fraction s.
func (m *Mapper) Progress(s float32, index int) float32 {
	start := float32(index) * m.Params.Stagger
	return clamp01((s - start) * m.Params.Speed)
}

// Retraction returns r = min(1, p*Retract) for a progress p > 0, and 0 otherwise.
func (m *Mapper) Retraction(p float32) float32 {
	if !(p > 0) {
		return 0
	}
	return math32.Min(1, p*m.Params.Retract)
}

// DepthOffset is the distance panel index has travelled along Z at fraction s.
func (m *Mapper) DepthOffset(s float32, index int) float32 {
	return m.Retraction(m.Progress(s, index)) * m.Params.Distance
}

// Apply recomputes every panel for fraction s. Only depth moves; Y and rotation stay on baseline.
// A panel whose progress is not positive (including NaN) is reset exactly to its baseline.
func (m *Mapper) Apply(panels []*Panel, s float32) {
	for i, p := range panels {
		progress := m.Progress(s, i)
		if !(progress > 0) {
			p.Reset()
			continue
		}
		p.Current.Y = p.Baseline.Y
		p.Current.Z = p.Baseline.Z + m.Retraction(progress)*m.Params.Distance
		p.Current.RotZ = p.Baseline.RotZ
	}
}
