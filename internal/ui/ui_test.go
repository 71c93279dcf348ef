package ui

import (
	"strings"
	"testing"
	"time"

	"garage-door/internal/page"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* page */
#loading { background: #0f172a; opacity: 0.5 }
.title, .body { color: #fff; font-size: 24px; }
div.bad { color: #f00; }
@media (max-width: 768px) { .title { font-size: 12px; } }
.link:hover { color: #000; }
.title { text-align: center; }
`)
	if err != nil {
		t.Fatal(err)
	}
	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	want := []string{"#loading", ".title", ".body", ".title"}
	if len(sels) != len(want) {
		t.Fatalf("selectors = %v, want %v", sels, want)
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Fatalf("selectors = %v, want %v", sels, want)
		}
	}
	if got := sheet.Rules[1].Props["font-size"]; got != "24px" {
		t.Errorf("font-size = %q", got)
	}
	if got := sheet.Rules[0].Props["opacity"]; got != "0.5" {
		t.Errorf("opacity = %q", got)
	}
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{
		"background": "rgba(15, 23, 42, 0.6)",
		"color":      "#e2e8f0",
		"width":      "100%",
		"height":     "64px",
		"left":       "50%",
		"font-size":  "18px",
		"text-align": "center",
		"opacity":    "1.5",
	})
	if s.Background.R != 15 || s.Background.A != 153 {
		t.Errorf("background = %+v", s.Background)
	}
	if s.Color.R != 0xe2 || s.WidthPct != 100 || s.Height != 64 || s.LeftPct != 50 {
		t.Errorf("style = %+v", s)
	}
	if s.FontSize != 18 || !s.Center || s.Opacity != 1 {
		t.Errorf("text = %+v", s)
	}
	if _, ok := ParseColor("rgba(1,2,3)"); ok {
		t.Error("rgba with three parts accepted")
	}
	if _, ok := ParseColor("red"); ok {
		t.Error("named colours are not supported")
	}
}

func TestLayout(t *testing.T) {
	e := New(nil)
	sheet, _ := ParseCSS(DefaultCSS)
	e.SetStylesheet(sheet)
	ind := NewNode("label", "", "scroll-indicator", "")
	r := Layout(ind, e.Style(ind), 1000, 800)
	if r.Width != 160 || r.X != 420 {
		t.Errorf("indicator rect = %+v", r)
	}
	pos := NewNode("label", "section-title", "", "")
	pos.Positioned = true
	pos.Bounds.X, pos.Bounds.Y = 5, 300
	pos.OffsetY = 30
	if r := Layout(pos, e.Style(pos), 1000, 800); r.X != 5 || r.Y != 330 {
		t.Errorf("positioned rect = %+v", r)
	}
}

func newPage(n int) *page.Page {
	var secs []page.Section
	for i := 0; i < n; i++ {
		secs = append(secs, page.Section{ID: string(rune('a' + i)), Title: string(rune('A' + i))})
	}
	p := page.New(secs, page.DefaultOptions())
	p.Resize(1280, 720)
	return p
}

func TestPageViewLoadingAndIndicator(t *testing.T) {
	p := newPage(3)
	v := NewPageView(p, page.DefaultLoadingScreen())
	v.Update(p, 0, 0)
	if v.loading.Opacity != 1 || v.loading.Hidden {
		t.Errorf("loading screen at start: %+v", v.loading)
	}
	if v.indicator.Opacity != 0.7 {
		t.Errorf("indicator = %v", v.indicator.Opacity)
	}
	v.Update(p, 3*time.Second, 0)
	if !v.loading.Hidden {
		t.Error("loading screen still shown after delay and fade")
	}
	p.ScrollBy(p.MaxScroll())
	v.Update(p, 3*time.Second, 0)
	if v.indicator.Opacity != 0 {
		t.Errorf("indicator at bottom = %v", v.indicator.Opacity)
	}
}

func TestPageViewReveal(t *testing.T) {
	p := newPage(3)
	v := NewPageView(p, page.DefaultLoadingScreen())
	p.UpdateReveals()
	v.Update(p, 0, 400*time.Millisecond)
	if got := v.Progress(0); got != 0.5 {
		t.Errorf("first section progress = %v, want 0.5", got)
	}
	if v.titles[0].OffsetY != 15 {
		t.Errorf("slide = %v, want 15", v.titles[0].OffsetY)
	}
	if v.Progress(2) != 0 {
		t.Error("off-screen section started revealing")
	}
	v.Update(p, 0, time.Second)
	if v.Progress(0) != 1 || v.titles[0].OffsetY != 0 {
		t.Errorf("progress = %v offset = %v", v.Progress(0), v.titles[0].OffsetY)
	}
}

func TestLinksAndHitTest(t *testing.T) {
	p := newPage(2)
	v := NewPageView(p, page.DefaultLoadingScreen())
	v.Update(p, 5*time.Second, 0)
	e := New(nil)
	e.SetNodes(v.Nodes())
	links := v.Links()
	if len(links) != 2 || Target(links[1]) != "b" {
		t.Fatalf("links = %+v", links)
	}
	r := links[1].Bounds
	if hit := e.HitTest(r.X+1, r.Y+1, 1280, 720); hit != links[1] {
		t.Errorf("hit = %+v", hit)
	}
	if hit := e.HitTest(1, 700, 1280, 720); hit != nil {
		t.Errorf("hit empty space = %+v", hit)
	}
}

func TestInspector(t *testing.T) {
	in := NewInspector()
	if got := in.AppendNodes(nil, false, Status{}, 720); got != nil {
		t.Error("hidden inspector appended nodes")
	}
	nodes := in.AppendNodes(nil, true, Status{Outcome: "failed", Procedural: true, Panels: 8}, 720)
	if len(nodes) != 8+InspectorLogLines {
		t.Fatalf("got %d nodes", len(nodes))
	}
	if in.outcome.Text != "Load: failed (procedural)" || in.panels.Text != "Panels: 8" || in.source.Text != "Source: -" {
		t.Errorf("labels = %q %q %q", in.outcome.Text, in.panels.Text, in.source.Text)
	}
	for _, n := range in.log {
		if n.Text != "" {
			t.Errorf("log line %q with no log", n.Text)
		}
	}
}

func TestInspectorShowsLogTail(t *testing.T) {
	in := NewInspector()
	long := "[2026-10-19 10:00:00] ERROR " + strings.Repeat("x", 80)
	st := Status{Log: []string{"one", "two", "three", "four", long}}
	nodes := in.AppendNodes(nil, true, st, 720)
	if got := len(nodes); got != 8+InspectorLogLines {
		t.Fatalf("got %d nodes", got)
	}
	if in.log[0].Text != "two" || in.log[2].Text != "four" {
		t.Errorf("tail = %q %q", in.log[0].Text, in.log[2].Text)
	}
	last := in.log[InspectorLogLines-1].Text
	if len([]rune(last)) != logLineWidth || !strings.HasSuffix(last, "...") {
		t.Errorf("long line not clipped: %q", last)
	}
	if in.log[0].Bounds.Y <= in.camera.Bounds.Y || in.log[0].Bounds.Y > 720 {
		t.Errorf("log lines at y=%v, camera line at y=%v", in.log[0].Bounds.Y, in.camera.Bounds.Y)
	}

	in.AppendNodes(nil, true, Status{Log: []string{"only"}}, 720)
	if in.log[0].Text != "only" || in.log[1].Text != "" {
		t.Errorf("stale log lines kept: %q %q", in.log[0].Text, in.log[1].Text)
	}
}
