package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Width  int
	Height int
	Title  string
	FPS    int
	// Background is the clear colour used before draw is called.
	Background rl.Color
}

// Run opens a resizable window and runs the main loop until it is closed. Each frame it calls
// update (input, animation), then clears the screen and calls draw (3D scene, then 2D overlay).
// init runs once after the window and GL context exist; shutdown runs before the window closes.
func Run(w Window, init func(), update, draw func(), shutdown func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyEscape)
	fps := w.FPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	if init != nil {
		init()
	}
	if shutdown != nil {
		defer shutdown()
	}
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
}
