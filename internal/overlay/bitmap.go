package overlay

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
)

// Spec describes the branding bitmap. Colours are #RRGGBB or #RGB strings.
type Spec struct {
	Text         string  `yaml:"text"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FontSize     float64 `yaml:"font_size"`
	FontFamily   string  `yaml:"font_family"`
	FontPath     string  `yaml:"font_path,omitempty"`
	From         string  `yaml:"from"`
	To           string  `yaml:"to"`
	Outline      string  `yaml:"outline"`
	OutlineWidth float64 `yaml:"outline_width"`
}

// DefaultSpec is the GALVANIX wordmark: 512×128, bold 48px, indigo to violet with a white outline.
func DefaultSpec() Spec {
	return Spec{
		Text:         "GALVANIX",
		Width:        512,
		Height:       128,
		FontSize:     48,
		FontFamily:   "Inter, sans-serif",
		From:         "#6366f1",
		To:           "#8b5cf6",
		Outline:      "#ffffff",
		OutlineWidth: 2,
	}
}

// ParseHex parses #RGB or #RRGGBB into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("overlay: bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("overlay: bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Build renders spec onto a transparent bitmap: the text outlined in spec.Outline, then filled
// with a left-to-right gradient. The same bitmap serves both the model and the fallback door.
func Build(spec Spec, face font.Face) (image.Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("overlay: bad size %dx%d", spec.Width, spec.Height)
	}
	from, err := ParseHex(spec.From)
	if err != nil {
		return nil, err
	}
	to, err := ParseHex(spec.To)
	if err != nil {
		return nil, err
	}
	outline, err := ParseHex(spec.Outline)
	if err != nil {
		return nil, err
	}

	w, h := float64(spec.Width), float64(spec.Height)
	cx, cy := w/2, h/2

	dc := gg.NewContext(spec.Width, spec.Height)
	dc.SetFontFace(face)

	// Outline: the stroke straddles the glyph edge, so half its width shows outside the fill.
	r := spec.OutlineWidth / 2
	if r > 0 {
		dc.SetColor(outline)
		for _, d := range ringOffsets(r) {
			dc.DrawStringAnchored(spec.Text, cx+d[0], cy+d[1], 0.5, 0.5)
		}
	}

	text := gg.NewContext(spec.Width, spec.Height)
	text.SetFontFace(face)
	text.SetColor(color.White)
	text.DrawStringAnchored(spec.Text, cx, cy, 0.5, 0.5)

	grad := gg.NewLinearGradient(0, 0, w, 0)
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)
	if err := dc.SetMask(text.AsMask()); err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
	dc.ResetClip()

	return dc.Image(), nil
}

// ringOffsets returns the eight neighbour offsets at distance r.
func ringOffsets(r float64) [][2]float64 {
	return [][2]float64{
		{-r, -r}, {0, -r}, {r, -r},
		{-r, 0}, {r, 0},
		{-r, r}, {0, r}, {r, r},
	}
}
