package ui

import (
	"fmt"
	"strings"
)

// InspectorLogLines is how many recent log lines the inspector shows.
const InspectorLogLines = 4

const (
	inspectorHeight = 290
	logLineWidth    = 52
)

// Inspector is a bottom-left panel describing the door: where it came from, how it loaded,
// how many panels animate, where the scroll sits and the latest log lines. Shown only when
// visible is true.
type Inspector struct {
	panel   *Node
	title   *Node
	source  *Node
	outcome *Node
	panels  *Node
	scroll  *Node
	profile *Node
	camera  *Node
	log     []*Node
}

// NewInspector creates an Inspector with nodes styled by the engine's CSS (.inspector, .inspector-line).
func NewInspector() *Inspector {
	in := &Inspector{
		panel:   NewNode("panel", "inspector", "", ""),
		title:   NewNode("label", "inspector-title", "", "Door"),
		source:  NewNode("label", "inspector-line", "", ""),
		outcome: NewNode("label", "inspector-line", "", ""),
		panels:  NewNode("label", "inspector-line", "", ""),
		scroll:  NewNode("label", "inspector-line", "", ""),
		profile: NewNode("label", "inspector-line", "", ""),
		camera:  NewNode("label", "inspector-line", "", ""),
	}
	for range InspectorLogLines {
		in.log = append(in.log, NewNode("label", "inspector-log", "", ""))
	}
	return in
}

// Status holds the data shown in the inspector. Pass this from the app layer; ui does not depend on scene.
type Status struct {
	Source     string
	Outcome    string
	Panels     int
	Procedural bool
	Fraction   float32
	Profile    string
	CameraY    float32
	CameraZ    float32
	// Log is the tail of the app log, oldest first.
	Log []string
}

// InspectorCSS lays the inspector out in the bottom-left corner.
const InspectorCSS = `
.inspector { left: 12px; top: 100%; width: 420px; height: 290px; background: rgba(15, 23, 42, 0.8); border: #334155; }
.inspector-title, .inspector-line { color: #e2e8f0; font-size: 16px; padding: 0; }
.inspector-log { color: #94a3b8; font-size: 12px; padding: 0; }
`

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from st.
// When visible is false, dst is returned unchanged.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, st Status, screenH float32) []*Node {
	if !visible {
		return dst
	}
	src := st.Source
	if src == "" {
		src = "-"
	}
	in.source.Text = "Source: " + src
	in.outcome.Text = "Load: " + st.Outcome
	if st.Procedural {
		in.outcome.Text += " (procedural)"
	}
	in.panels.Text = fmt.Sprintf("Panels: %d", st.Panels)
	in.scroll.Text = fmt.Sprintf("Scroll: %.3f", st.Fraction)
	in.profile.Text = "Profile: " + st.Profile
	in.camera.Text = fmt.Sprintf("Camera: y %.2f z %.2f", st.CameraY, st.CameraZ)

	tail := st.Log
	if len(tail) > len(in.log) {
		tail = tail[len(tail)-len(in.log):]
	}
	for i, n := range in.log {
		n.Text = ""
		if i < len(tail) {
			n.Text = clip(tail[i], logLineWidth)
		}
	}

	lines := []*Node{in.title, in.source, in.outcome, in.panels, in.scroll, in.profile, in.camera}
	top := screenH - inspectorHeight + 10
	for i, n := range lines {
		n.Positioned = true
		n.Bounds.X = 24
		n.Bounds.Y = top + float32(i)*24
	}
	logTop := top + float32(len(lines))*24 + 4
	for i, n := range in.log {
		n.Positioned = true
		n.Bounds.X = 24
		n.Bounds.Y = logTop + float32(i)*18
	}
	dst = append(append(dst, in.panel), lines...)
	return append(dst, in.log...)
}

// clip shortens s to at most n runes, marking the cut with "...".
func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
