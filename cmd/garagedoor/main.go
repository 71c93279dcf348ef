package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"garage-door/internal/config"
	"garage-door/internal/env"
	"garage-door/internal/fonts"
	"garage-door/internal/googlefonts"
	"garage-door/internal/logger"
	"garage-door/internal/overlay"
)

func main() {
	os.Exit(Main())
}

// Main parses flags, loads configuration and runs the window. Returns the process exit code.
func Main() int {
	configPath := flag.String("config", config.DefaultPath, "YAML config `file`")
	model := flag.String("model", "", "model `source`: .gltf/.glb path, http(s) URL or .zip (overrides config)")
	showFPS := flag.Bool("fps", false, "show the FPS counter")
	exportPath := flag.String("export-overlay", "", "write the branding bitmap to `file` (.png or .webp) and exit")
	width := flag.Int("width", 0, "window width (overrides config)")
	height := flag.Int("height", 0, "window height (overrides config)")
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.Main()

	if _, err := env.Load(".env"); err != nil {
		log.Warnf("read .env: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warnf("%v; using defaults", err)
	}
	over := config.FromEnv()
	if *model != "" {
		over.Model = *model
	}
	if *showFPS {
		on := true
		over.ShowFPS = &on
	}
	if err := cfg.Apply(over); err != nil {
		return log.FErrf("apply overrides: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	lg := logger.New(cfg.Log.File)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	img, fontPath, err := buildOverlay(ctx, cfg.Overlay, cfg.Fonts, lg)
	if err != nil {
		return log.FErrf("build overlay: %v", err)
	}
	if *exportPath != "" {
		if err := overlay.Export(img, *exportPath); err != nil {
			return log.FErrf("export overlay: %v", err)
		}
		lg.Infof("Overlay written to %s", *exportPath)
		return 0
	}

	a := newApp(ctx, cfg, lg, img, fontPath)
	if w, err := config.Watch(*configPath, over, lg); err != nil {
		lg.Warnf("Config hot reload disabled: %v", err)
	} else {
		a.watcher = w
		defer w.Close()
	}
	a.run()
	return 0
}

// buildOverlay renders the branding bitmap. fontPath is the file the face came from, or empty
// when the embedded face was used.
func buildOverlay(ctx context.Context, spec overlay.Spec, fc config.Fonts, lg *logger.Logger) (image.Image, string, error) {
	face, src, err := fonts.Resolve(spec.FontPath, spec.FontFamily, fonts.BaseDirs(), spec.FontSize)
	if err != nil {
		return nil, "", fmt.Errorf("font: %w", err)
	}
	if src == "gobold" && fc.Fetch {
		if fams := fonts.Families(spec.FontFamily); len(fams) > 0 {
			path, err := googlefonts.New().Fetch(ctx, fams[0], fc.Dir)
			if err != nil {
				lg.Warnf("Fetch font %s: %v", fams[0], err)
			} else if f, err := fonts.LoadFace(path, spec.FontSize); err != nil {
				lg.Warnf("Font %s: %v", path, err)
			} else {
				face, src = f, path
				lg.Infof("Using fetched font %s", path)
			}
		}
	}
	img, err := overlay.Build(spec, face)
	if err != nil {
		return nil, "", err
	}
	if src == "gobold" {
		src = ""
	}
	return img, src, nil
}
