package main

import (
	"context"
	"image"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"garage-door/internal/assets"
	"garage-door/internal/config"
	"garage-door/internal/debug"
	"garage-door/internal/door"
	"garage-door/internal/graphics"
	"garage-door/internal/logger"
	"garage-door/internal/page"
	"garage-door/internal/scene"
	"garage-door/internal/ui"
)

// app wires the page, the scene and the overlays together. Every method runs on the render thread.
type app struct {
	ctx       context.Context
	cfg       config.Config
	log       *logger.Logger
	page      *page.Page
	view      *ui.PageView
	engine    *ui.Engine
	inspector *ui.Inspector
	dbg       *debug.Debug
	scn       *scene.Scene
	watcher   *config.Watcher
	fontPath  string
	hudShown  bool
	// engineReady is set once the engine has been given its nodes.
	engineReady bool
	start       time.Time
	last        time.Time
}

func newApp(ctx context.Context, cfg config.Config, lg *logger.Logger, overlayImg image.Image, fontPath string) *app {
	a := &app{
		ctx:       ctx,
		cfg:       cfg,
		log:       lg,
		page:      page.New(cfg.Page.Sections, cfg.Scroll),
		inspector: ui.NewInspector(),
		dbg:       debug.New(cfg.Debug),
		fontPath:  fontPath,
	}
	a.page.Resize(float32(cfg.Window.Width), float32(cfg.Window.Height))
	a.view = ui.NewPageView(a.page, cfg.Page.Loading)
	a.engine = ui.New(a.stylesheet())
	a.scn = scene.New(sceneOptions(cfg), cfg.Window.Width, lg)
	a.scn.SetOverlay(overlayImg)
	return a
}

// sceneOptions maps the config onto scene options.
func sceneOptions(cfg config.Config) scene.Options {
	opts := scene.DefaultOptions()
	opts.Layout = cfg.Layout
	opts.Animation = cfg.Animation
	opts.Camera = cfg.Camera
	opts.Door = cfg.Door.Procedural
	return opts
}

// stylesheet returns the page CSS: the configured file when it parses, else the built-in one.
func (a *app) stylesheet() *ui.Stylesheet {
	css := ui.DefaultCSS + ui.InspectorCSS
	sheet, err := ui.ParseCSS(css)
	if err != nil {
		a.log.Errorf("Built-in stylesheet: %v", err)
	}
	if a.cfg.Page.CSS == "" {
		return sheet
	}
	e := ui.New(nil)
	if err := e.LoadCSS(a.cfg.Page.CSS); err != nil {
		a.log.Warnf("Stylesheet %s: %v", a.cfg.Page.CSS, err)
		return sheet
	}
	a.log.Infof("Stylesheet loaded from %s", a.cfg.Page.CSS)
	return e.Stylesheet()
}

func (a *app) run() {
	graphics.Run(graphics.Window{
		Width:      a.cfg.Window.Width,
		Height:     a.cfg.Window.Height,
		Title:      a.cfg.Window.Title,
		FPS:        a.cfg.Window.FPS,
		Background: a.scn.Background(),
	}, a.init, a.update, a.draw, a.shutdown)
}

func (a *app) init() {
	a.start = time.Now()
	a.last = a.start
	if a.fontPath != "" {
		if err := a.engine.LoadFont(a.fontPath); err != nil {
			a.log.Warnf("UI font %s: %v", a.fontPath, err)
		}
	}
	resolver := assets.NewResolver(a.cfg.Model, a.cfg.CacheDir, a.log)
	loader := door.NewLoader(a.log, door.NameClassifier(a.cfg.Door.Include, a.cfg.Door.Exclude), a.cfg.Door.Procedural)
	a.scn.Load(a.ctx, loader, resolver.Resolve)
	a.log.Infof("Loading %s", a.cfg.Model)
}

func (a *app) update() {
	now := time.Now()
	dt := now.Sub(a.last)
	a.last = now

	a.reload()
	a.dbg.HandleKeys()

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	scrolled := a.page.Resize(float32(w), float32(h))
	a.scn.Resize(w)

	scrolled = a.page.Wheel(rl.GetMouseWheelMove()) || scrolled
	scrolled = a.keys() || scrolled
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if link := a.engine.HitTest(m.X, m.Y, float32(w), float32(h)); link != nil {
			a.page.ScrollIntoView(ui.Target(link))
		}
	}
	scrolled = a.page.Step() || scrolled
	if scrolled {
		a.scn.SetFraction(a.page.Fraction())
	}
	a.page.UpdateReveals()

	var in scene.Input
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		in.DragX = rl.GetMouseDelta().X
	}
	a.scn.Update(in)
	a.view.Update(a.page, now.Sub(a.start), dt)
	nodes := a.inspector.AppendNodes(a.view.Nodes(), a.dbg.ShowHUD, a.status(), float32(h))
	if a.dbg.ShowHUD != a.hudShown || !a.engineReady {
		a.engine.SetNodes(nodes)
		a.hudShown = a.dbg.ShowHUD
		a.engineReady = true
	}
}

// keys handles keyboard scrolling and the number keys that jump to sections.
func (a *app) keys() bool {
	_, vh := a.page.Viewport()
	moved := false
	switch {
	case rl.IsKeyPressed(rl.KeyDown):
		moved = a.page.ScrollBy(a.page.Options.WheelStep)
	case rl.IsKeyPressed(rl.KeyUp):
		moved = a.page.ScrollBy(-a.page.Options.WheelStep)
	case rl.IsKeyPressed(rl.KeyPageDown), rl.IsKeyPressed(rl.KeySpace):
		moved = a.page.ScrollBy(vh)
	case rl.IsKeyPressed(rl.KeyPageUp):
		moved = a.page.ScrollBy(-vh)
	case rl.IsKeyPressed(rl.KeyHome):
		moved = a.page.ScrollBy(-a.page.ScrollY())
	case rl.IsKeyPressed(rl.KeyEnd):
		moved = a.page.ScrollBy(a.page.MaxScroll())
	}
	for i := 0; i < 9; i++ {
		if rl.IsKeyPressed(int32(rl.KeyOne + i)) {
			if id := sectionForKey(a.page.Sections, i); id != "" {
				a.page.ScrollIntoView(id)
			}
		}
	}
	return moved
}

// sectionForKey returns the anchor of the section bound to number key i (0 for "1").
func sectionForKey(sections []page.Section, i int) string {
	if i < 0 || i >= len(sections) {
		return ""
	}
	return sections[i].ID
}

// reload applies a changed config file. The model and window are not reloaded.
func (a *app) reload() {
	if a.watcher == nil {
		return
	}
	if cfg, ok := a.watcher.Poll(); ok {
		a.applyConfig(cfg)
	}
}

// applyConfig takes the live-reloadable parts of cfg: layout, animation, camera, scroll, debug
// flags and the log file. The model and window stay as started.
func (a *app) applyConfig(cfg config.Config) {
	a.cfg.Layout, a.cfg.Animation, a.cfg.Camera = cfg.Layout, cfg.Animation, cfg.Camera
	a.cfg.Scroll, a.cfg.Debug, a.cfg.Log = cfg.Scroll, cfg.Debug, cfg.Log
	a.page.Options = cfg.Scroll
	a.dbg.Apply(cfg.Debug)
	if cfg.Log.File != "" && cfg.Log.File != a.log.Path() {
		a.log.Infof("Log file now %s", cfg.Log.File)
		a.log.SetPath(cfg.Log.File)
	}
	a.scn.Reconfigure(cfg.Layout, cfg.Animation, cfg.Camera)
	a.scn.SetFraction(a.page.Fraction())
}

func (a *app) status() ui.Status {
	st := ui.Status{
		Outcome:  "loading",
		Fraction: a.page.Fraction(),
		Profile:  a.scn.Profile.Name,
		CameraY:  a.scn.Camera.Position.Y,
		CameraZ:  a.scn.Camera.Position.Z,
		Log:      a.log.Last(ui.InspectorLogLines),
	}
	if res := a.scn.Result(); res != nil {
		st.Source = res.Source
		st.Outcome = res.Outcome.String()
		st.Panels = len(res.Panels)
		st.Procedural = res.UsesProcedural()
	}
	return st
}

func (a *app) draw() {
	a.scn.Draw()
	a.engine.Draw()
	a.dbg.Draw()
}

func (a *app) shutdown() {
	a.engine.Unload()
	a.scn.Unload()
}
