package layout

import "testing"

func TestSelectAcrossBreakpoint(t *testing.T) {
	p := Default()
	tests := []struct {
		width int
		want  string
	}{
		{320, "mobile"},
		{768, "mobile"},
		{769, "desktop"},
		{1920, "desktop"},
	}
	for _, tt := range tests {
		got := p.Select(tt.width)
		if got.Name != tt.want {
			t.Errorf("Select(%d) = %q, want %q", tt.width, got.Name, tt.want)
		}
	}
}

func TestProfileValues(t *testing.T) {
	p := Default()
	m := p.Select(500)
	if m.CameraDistance != 35 || m.ModelScale != 15 || m.ModelPosition != [3]float32{0, -5, 10} || m.LookAtY != -5 {
		t.Errorf("unexpected mobile profile: %+v", m)
	}
	d := p.Select(1280)
	if d.CameraDistance != 25 || d.ModelScale != 25 || d.ModelPosition != [3]float32{0, -10, 5} || d.LookAtY != 0 {
		t.Errorf("unexpected desktop profile: %+v", d)
	}
}

func TestZeroBreakpointFallsBackToDefault(t *testing.T) {
	p := Default()
	p.Breakpoint = 0
	if !p.IsMobile(DefaultBreakpoint) {
		t.Errorf("width %d should be mobile with zero breakpoint", DefaultBreakpoint)
	}
	if p.IsMobile(DefaultBreakpoint + 1) {
		t.Errorf("width %d should be desktop with zero breakpoint", DefaultBreakpoint+1)
	}
}
