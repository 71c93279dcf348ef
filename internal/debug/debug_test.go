package debug

import (
	"testing"

	"garage-door/internal/config"
)

func TestApplyAndToggle(t *testing.T) {
	d := New(config.Debug{ShowFPS: true})
	if !d.ShowFPS || d.ShowMemAlloc || d.ShowHUD {
		t.Fatalf("debug = %+v", d)
	}
	if !d.Toggle(KeyHUD) || !d.ShowHUD {
		t.Error("F3 did not show the inspector")
	}
	if !d.Toggle(KeyFPS) || d.ShowFPS {
		t.Error("F1 did not hide FPS")
	}
	if d.Toggle(0) {
		t.Error("unbound key handled")
	}
	d.Apply(config.Debug{ShowMemAlloc: true})
	if d.ShowHUD || !d.ShowMemAlloc {
		t.Errorf("Apply did not replace toggles: %+v", d)
	}
}

func TestTexts(t *testing.T) {
	if got := fpsText(60); got != "FPS: 60" {
		t.Errorf("fpsText = %q", got)
	}
	if got := memText(3 * 1024 * 1024 / 2); got != "Mem: 1.50 MiB" {
		t.Errorf("memText = %q", got)
	}
}
