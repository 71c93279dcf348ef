// Package page models the scrollable document the door animation is driven by.
// The window is the viewport; the document is a stack of sections, each one viewport tall.
package page

import "github.com/chewxy/math32"

// Section is one full-viewport block of the page. ID is the anchor name used by navigation.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
}

// Options controls scroll input and the derived fraction.
// With Clamp false the fraction is passed through unguarded and may be NaN when nothing scrolls.
type Options struct {
	Clamp        bool    `yaml:"clamp"`
	WheelStep    float32 `yaml:"wheel_step"`
	SmoothFactor float32 `yaml:"smooth_factor"`
}

// DefaultOptions returns clamped fractions, 80px per wheel notch and a 15% per frame smooth scroll.
func DefaultOptions() Options {
	return Options{
		Clamp:        true,
		WheelStep:    80,
		SmoothFactor: 0.15,
	}
}

// snapDistance is how close a smooth scroll must get before it jumps onto its target.
const snapDistance = 0.5

// Page holds the scroll state of the virtual document.
type Page struct {
	Sections []Section
	Options  Options

	viewportW float32
	viewportH float32
	scrollY   float32
	target    float32
	smooth    bool
	revealed  []bool
}

// New returns a page with the given sections, scrolled to the top.
func New(sections []Section, opts Options) *Page {
	return &Page{
		Sections: sections,
		Options:  opts,
		revealed: make([]bool, len(sections)),
	}
}

// Resize sets the viewport size. The scroll offset is kept inside the new scroll range.
func (p *Page) Resize(w, h float32) bool {
	p.viewportW, p.viewportH = w, h
	return p.setScroll(p.scrollY)
}

// Viewport returns the current viewport size.
func (p *Page) Viewport() (w, h float32) {
	return p.viewportW, p.viewportH
}

// ContentHeight is the height of the whole document.
func (p *Page) ContentHeight() float32 {
	return float32(len(p.Sections)) * p.viewportH
}

// MaxScroll is the largest scroll offset; zero when the document fits in the viewport.
func (p *Page) MaxScroll() float32 {
	return math32.Max(0, p.ContentHeight()-p.viewportH)
}

// ScrollY returns the current vertical scroll offset.
func (p *Page) ScrollY() float32 {
	return p.scrollY
}

// setScroll moves to y, limited to the scroll range, and reports whether the offset changed.
func (p *Page) setScroll(y float32) bool {
	y = math32.Max(0, math32.Min(y, p.MaxScroll()))
	if y == p.scrollY {
		return false
	}
	p.scrollY = y
	return true
}

// ScrollBy scrolls by dy pixels immediately and cancels any smooth scroll in progress.
func (p *Page) ScrollBy(dy float32) bool {
	p.smooth = false
	return p.setScroll(p.scrollY + dy)
}

// Wheel scrolls by notches of the mouse wheel. Positive notches scroll up, as raylib reports them.
func (p *Page) Wheel(notches float32) bool {
	if notches == 0 {
		return false
	}
	return p.ScrollBy(-notches * p.Options.WheelStep)
}

// SectionTop returns the scroll offset at which section i starts.
func (p *Page) SectionTop(i int) float32 {
	return float32(i) * p.viewportH
}

// IndexOf returns the index of the section with the given anchor id, or -1.
func (p *Page) IndexOf(id string) int {
	for i, s := range p.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// ScrollIntoView starts a smooth scroll that brings the section with anchor id to the top.
// Unknown ids are ignored and reported as false.
func (p *Page) ScrollIntoView(id string) bool {
	i := p.IndexOf(id)
	if i < 0 {
		return false
	}
	p.target = math32.Min(p.SectionTop(i), p.MaxScroll())
	p.smooth = true
	return true
}

// Scrolling reports whether a smooth scroll is still running.
func (p *Page) Scrolling() bool {
	return p.smooth
}

// Step advances a running smooth scroll by one frame and reports whether the offset changed.
func (p *Page) Step() bool {
	if !p.smooth {
		return false
	}
	d := p.target - p.scrollY
	if math32.Abs(d) <= snapDistance {
		p.smooth = false
		return p.setScroll(p.target)
	}
	return p.setScroll(p.scrollY + d*p.Options.SmoothFactor)
}

// Fraction is the scroll offset divided by the scrollable distance.
// Clamped pages always return a value in [0,1] (0 when nothing scrolls); unclamped pages return
// the raw quotient, which is NaN for a page without overflow.
func (p *Page) Fraction() float32 {
	s := p.scrollY / (p.ContentHeight() - p.viewportH)
	if !p.Options.Clamp {
		return s
	}
	if math32.IsNaN(s) {
		return 0
	}
	return math32.Max(0, math32.Min(1, s))
}
