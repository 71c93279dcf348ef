package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"garage-door/internal/config"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Toggle keys.
const (
	KeyFPS = rl.KeyF1
	KeyMem = rl.KeyF2
	KeyHUD = rl.KeyF3
)

// Debug holds runtime debugging features (FPS, heap, door inspector). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHUD      bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system configured from cfg.
func New(cfg config.Debug) *Debug {
	d := &Debug{}
	d.Apply(cfg)
	return d
}

// Apply takes the toggles from cfg (e.g. after a config reload).
func (d *Debug) Apply(cfg config.Debug) {
	d.ShowFPS = cfg.ShowFPS
	d.ShowMemAlloc = cfg.ShowMemAlloc
	d.ShowHUD = cfg.ShowHUD
}

// Toggle flips the overlay bound to key. Returns false for keys it does not handle.
func (d *Debug) Toggle(key int32) bool {
	switch key {
	case KeyFPS:
		d.ShowFPS = !d.ShowFPS
	case KeyMem:
		d.ShowMemAlloc = !d.ShowMemAlloc
	case KeyHUD:
		d.ShowHUD = !d.ShowHUD
	default:
		return false
	}
	return true
}

// HandleKeys toggles overlays for the function keys pressed this frame.
func (d *Debug) HandleKeys() {
	for _, k := range []int32{KeyFPS, KeyMem, KeyHUD} {
		if rl.IsKeyPressed(k) {
			d.Toggle(k)
		}
	}
}

func fpsText(fps int32) string {
	return fmt.Sprintf("FPS: %d", fps)
}

func memText(alloc uint64) string {
	return fmt.Sprintf("Mem: %.2f MiB", float64(alloc)/(1024*1024))
}

// Draw renders any enabled counters at the top-right in green, FPS first.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding) + 64 // below the nav bar

	if d.ShowFPS {
		if update {
			d.lastFpsText = fpsText(rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = memText(d.lastMemStats.Alloc)
		}
		drawRight(d.lastMemText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
}
