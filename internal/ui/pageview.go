package ui

import (
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"garage-door/internal/page"
)

// DefaultCSS styles the page overlay when no stylesheet file is configured.
const DefaultCSS = `
#loading { background: #0f172a; width: 100%; height: 100%; color: #e2e8f0; font-size: 32px; text-align: center; padding: 0; }
#scroll-indicator { left: 50%; top: 92%; width: 160px; height: 32px; color: #e2e8f0; font-size: 18px; text-align: center; }
.nav { background: rgba(15, 23, 42, 0.6); width: 100%; height: 64px; }
.brand { left: 24px; top: 18px; color: #8b5cf6; font-size: 28px; padding: 0; }
.nav-link { color: #e2e8f0; font-size: 18px; text-align: center; padding: 8px; }
.section-title { color: #f8fafc; font-size: 56px; text-align: center; padding: 0; }
.section-body { color: #cbd5e1; font-size: 22px; text-align: center; padding: 0; }
`

// Layout constants for the positioned nodes.
const (
	navLinkWidth   = 120
	navLinkHeight  = 40
	navTop         = 12
	navRight       = 24
	titleHeight    = 64
	sectionBodyGap = 80
)

// PageView turns page state into overlay nodes: the loading screen, the nav bar with anchors,
// one title and body per section and the scroll indicator.
type PageView struct {
	Loading page.LoadingScreen
	// RevealDuration is how long a section takes to fade and slide in once revealed.
	RevealDuration time.Duration
	// SlideDistance is how far below its resting place a section starts, in pixels.
	SlideDistance float32

	nodes     []*Node
	loading   *Node
	indicator *Node
	links     []*Node
	titles    []*Node
	bodies    []*Node
	reveal    []float32
}

// NewPageView builds the nodes for p.
func NewPageView(p *page.Page, loading page.LoadingScreen) *PageView {
	v := &PageView{
		Loading:        loading,
		RevealDuration: 800 * time.Millisecond,
		SlideDistance:  30,
	}
	for _, s := range p.Sections {
		title := NewNode("label", "section-title", "", s.Title)
		body := NewNode("label", "section-body", "", s.Body)
		title.Positioned, body.Positioned = true, true
		v.titles = append(v.titles, title)
		v.bodies = append(v.bodies, body)
		v.nodes = append(v.nodes, title, body)
	}
	v.reveal = make([]float32, len(p.Sections))

	v.nodes = append(v.nodes, NewNode("panel", "nav", "", ""), NewNode("label", "brand", "", "GALVANIX"))
	for _, s := range p.Sections {
		link := NewLink("nav-link", s.Title, "#"+s.ID)
		link.Positioned = true
		v.links = append(v.links, link)
		v.nodes = append(v.nodes, link)
	}

	v.indicator = NewNode("label", "", "scroll-indicator", "Scroll to open")
	v.loading = NewNode("panel", "", "loading", "Loading...")
	v.nodes = append(v.nodes, v.indicator, v.loading)
	return v
}

// Nodes returns the nodes in draw order (loading screen last, on top).
func (v *PageView) Nodes() []*Node {
	return v.nodes
}

// Links returns the nav anchors in section order.
func (v *PageView) Links() []*Node {
	return v.links
}

// Update positions and fades the nodes for the current page state. elapsed is the time since
// start; dt is the frame time.
func (v *PageView) Update(p *page.Page, elapsed, dt time.Duration) {
	v.loading.Opacity = v.Loading.Opacity(elapsed)
	v.loading.Hidden = v.Loading.Hidden(elapsed)
	v.indicator.Opacity = page.IndicatorAlpha(p.Fraction())

	vw, vh := p.Viewport()
	scroll := p.ScrollY()
	step := float32(1)
	if v.RevealDuration > 0 {
		step = float32(dt) / float32(v.RevealDuration)
	}
	for i := range v.titles {
		if p.Revealed(i) && v.reveal[i] < 1 {
			v.reveal[i] = min(1, v.reveal[i]+step)
		}
		top := p.SectionTop(i) - scroll
		slide := (1 - v.reveal[i]) * v.SlideDistance
		for _, n := range []*Node{v.titles[i], v.bodies[i]} {
			n.Opacity = v.reveal[i]
			n.OffsetY = slide
		}
		v.titles[i].Bounds = rl.NewRectangle(0, top+vh*0.3, vw, titleHeight)
		v.bodies[i].Bounds = rl.NewRectangle(0, top+vh*0.3+sectionBodyGap, vw, titleHeight)
	}
	for i, link := range v.links {
		x := vw - navRight - float32(len(v.links)-i)*navLinkWidth
		link.Bounds = rl.NewRectangle(x, navTop, navLinkWidth, navLinkHeight)
	}
}

// Progress returns how far section i has faded in (0..1).
func (v *PageView) Progress(i int) float32 {
	if i < 0 || i >= len(v.reveal) {
		return 0
	}
	return v.reveal[i]
}

// Target returns the section id a link points at.
func Target(link *Node) string {
	return strings.TrimPrefix(link.Href, "#")
}
