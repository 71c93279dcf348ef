package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"garage-door/internal/animation"
	"garage-door/internal/layout"
	"garage-door/internal/overlay"
	"garage-door/internal/page"
	"garage-door/internal/procedural"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/garage.yaml"

// DefaultModel is the asset loaded when no model is configured.
const DefaultModel = "garage_door_01/scene.gltf"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type Door struct {
	Include    []string           `yaml:"include"`
	Exclude    []string           `yaml:"exclude"`
	Procedural procedural.Options `yaml:"procedural"`
}

type Page struct {
	Sections []page.Section     `yaml:"sections"`
	Loading  page.LoadingScreen `yaml:"loading"`
	// CSS is an optional stylesheet replacing the built-in page styles.
	CSS string `yaml:"css,omitempty"`
}

// Debug toggles the HUD lines. All off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowHUD      bool `yaml:"show_hud"`
}

// Fonts controls fetching the overlay font family when it is not installed.
type Fonts struct {
	Fetch bool   `yaml:"fetch"`
	Dir   string `yaml:"dir"`
}

type Log struct {
	File string `yaml:"file"`
}

// Config holds everything the scene reads at startup. Layout, Animation, Camera, Scroll, Debug
// and Log are also re-applied when the file changes on disk.
type Config struct {
	Model     string                 `yaml:"model"`
	CacheDir  string                 `yaml:"cache_dir"`
	Window    Window                 `yaml:"window"`
	Overlay   overlay.Spec           `yaml:"overlay"`
	Fonts     Fonts                  `yaml:"fonts"`
	Layout    layout.Profiles        `yaml:"layout"`
	Animation animation.Params       `yaml:"animation"`
	Camera    animation.CameraParams `yaml:"camera"`
	Scroll    page.Options           `yaml:"scroll"`
	Page      Page                   `yaml:"page"`
	Door      Door                   `yaml:"door"`
	Debug     Debug                  `yaml:"debug"`
	Log       Log                    `yaml:"log"`
}

// DefaultSections is the page shown over the scene.
func DefaultSections() []page.Section {
	return []page.Section{
		{ID: "home", Title: "GALVANIX", Body: "Garage doors built to last."},
		{ID: "products", Title: "Products", Body: "Sectional, roller and rolling-gate doors."},
		{ID: "about", Title: "About", Body: "Galvanized steel, insulated panels, quiet drives."},
		{ID: "contact", Title: "Contact", Body: "Ask for a quote."},
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model:    DefaultModel,
		CacheDir: "cache",
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Galvanix Garage Doors",
			FPS:    60,
		},
		Overlay:   overlay.DefaultSpec(),
		Fonts:     Fonts{Dir: "cache/fonts"},
		Layout:    layout.Default(),
		Animation: animation.DefaultParams(),
		Camera:    animation.DefaultCameraParams(),
		Scroll:    page.DefaultOptions(),
		Page: Page{
			Sections: DefaultSections(),
			Loading:  page.DefaultLoadingScreen(),
		},
		Door: Door{
			Include:    []string{"Door", "door", "panel", "slat", "rolling-gate"},
			Exclude:    []string{"Frame", "frame"},
			Procedural: procedural.DefaultOptions(),
		},
		Log: Log{File: "logs/garage.txt"},
	}
}

// Load reads the config at path on top of Default(). A missing file is not an error and yields
// Default(); a malformed file returns Default() together with the decode error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.fill()
	return cfg, nil
}

// fill restores defaults for values a partial file left unusable.
func (c *Config) fill() {
	def := Default()
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Window.FPS <= 0 {
		c.Window.FPS = def.Window.FPS
	}
	if len(c.Page.Sections) == 0 {
		c.Page.Sections = def.Page.Sections
	}
	if len(c.Door.Include) == 0 {
		c.Door.Include = def.Door.Include
	}
}
