package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"garage-door/internal/overlay"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".section" or "#loading"
	Props    map[string]string // e.g. "background" -> "#0f172a"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing (raylib types where applicable).
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top as pixels.
// WidthPct/HeightPct: 0–100 of the screen; -1 means use Width/Height as pixels.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	WidthPct   int32
	HeightPct  int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	Center     bool // text-align: center
	Opacity    float32
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		WidthPct:   -1,
		HeightPct:  -1,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   defaultFontSize,
		Opacity:    1,
	}
}

// ParseColor parses #RGB, #RRGGBB or rgba(r, g, b, a) with a in 0..1.
func ParseColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[len("rgba("):len(s)-1], ",")
		if len(parts) != 4 {
			return rl.Black, false
		}
		var c [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || n < 0 || n > 255 {
				return rl.Black, false
			}
			c[i] = uint8(n)
		}
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 32)
		if err != nil || a < 0 || a > 1 {
			return rl.Black, false
		}
		return rl.NewColor(c[0], c[1], c[2], uint8(a*255+0.5)), true
	}
	if !strings.HasPrefix(s, "#") {
		return rl.Black, false
	}
	c, err := overlay.ParseHex(s)
	if err != nil {
		return rl.Black, false
	}
	return rl.NewColor(c.R, c.G, c.B, c.A), true
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if pct, ok := ParsePct(v); ok {
				out.WidthPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if pct, ok := ParsePct(v); ok {
				out.HeightPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "text-align":
			out.Center = v == "center"
		case "opacity":
			if f, err := strconv.ParseFloat(v, 32); err == nil {
				out.Opacity = float32(min(max(f, 0), 1))
			}
		}
	}
	return out
}

// fade scales the alpha of c by k.
func fade(c rl.Color, k float32) rl.Color {
	c.A = uint8(float32(c.A)*min(max(k, 0), 1) + 0.5)
	return c
}
