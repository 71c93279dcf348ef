package page

import "github.com/chewxy/math32"

// Reveal thresholds for section fade-in: at least 10% of a section must be inside the
// viewport with its bottom 50px cut off.
const (
	RevealThreshold    = 0.1
	RevealBottomMargin = 50
)

// IntersectionRatio returns the share of section i inside the viewport shrunk by bottomMargin.
func (p *Page) IntersectionRatio(i int, bottomMargin float32) float32 {
	if i < 0 || i >= len(p.Sections) || p.viewportH <= 0 {
		return 0
	}
	top := p.SectionTop(i)
	bottom := top + p.viewportH
	viewTop := p.scrollY
	viewBottom := p.scrollY + p.viewportH - bottomMargin
	visible := math32.Min(bottom, viewBottom) - math32.Max(top, viewTop)
	if visible <= 0 {
		return 0
	}
	return visible / p.viewportH
}

// UpdateReveals marks every section that currently meets the reveal threshold.
// Sections stay revealed once marked. Returns the indices revealed by this call.
func (p *Page) UpdateReveals() []int {
	var fresh []int
	for i := range p.Sections {
		if p.revealed[i] {
			continue
		}
		if p.IntersectionRatio(i, RevealBottomMargin) >= RevealThreshold {
			p.revealed[i] = true
			fresh = append(fresh, i)
		}
	}
	return fresh
}

// Revealed reports whether section i has faded in.
func (p *Page) Revealed(i int) bool {
	return i >= 0 && i < len(p.revealed) && p.revealed[i]
}
