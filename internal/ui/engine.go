package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font
}

// New creates an engine with the given stylesheet (may be nil) and no nodes.
func New(sheet *Stylesheet) *Engine {
	return &Engine{sheet: sheet}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFontEx(path, 64, nil)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	rl.SetTextureFilter(e.font.Texture, rl.FilterBilinear)
	return nil
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Style returns the resolved style of n (class and id matched; last wins).
func (e *Engine) Style(n *Node) ComputedStyle {
	return ResolveProps(e.resolveProps(n))
}

func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := false
		switch sel[0] {
		case '.':
			matches = n.Class == sel[1:]
		case '#':
			matches = n.ID == sel[1:]
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Layout resolves the on-screen rectangle of n for a screen of size w×h.
func Layout(n *Node, style ComputedStyle, w, h float32) rl.Rectangle {
	r := n.Bounds
	if style.Width > 0 {
		r.Width = float32(style.Width)
	}
	if style.WidthPct >= 0 {
		r.Width = w * float32(style.WidthPct) / 100
	}
	if style.Height > 0 {
		r.Height = float32(style.Height)
	}
	if style.HeightPct >= 0 {
		r.Height = h * float32(style.HeightPct) / 100
	}
	if !n.Positioned {
		r.X = float32(style.Left)
		r.Y = float32(style.Top)
		if style.LeftPct >= 0 {
			r.X = (w - r.Width) * float32(style.LeftPct) / 100
		}
		if style.TopPct >= 0 {
			r.Y = (h - r.Height) * float32(style.TopPct) / 100
		}
	}
	r.Y += n.OffsetY
	return r
}

func (e *Engine) styles() []ComputedStyle {
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = e.Style(n)
		}
		e.cacheValid = true
	}
	return e.cachedStyles
}

// HitTest returns the topmost visible link under (x, y), or nil.
func (e *Engine) HitTest(x, y, w, h float32) *Node {
	styles := e.styles()
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.Type != "link" || n.Hidden || n.Opacity <= 0 {
			continue
		}
		if rl.CheckCollisionPointRec(rl.NewVector2(x, y), Layout(n, styles[i], w, h)) {
			return n
		}
	}
	return nil
}

// Draw draws all visible nodes: background, border, then text, each faded by style and node opacity.
func (e *Engine) Draw() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	styles := e.styles()
	for i, n := range e.nodes {
		style := styles[i]
		alpha := style.Opacity * n.Opacity
		if n.Hidden || alpha <= 0 {
			continue
		}
		r := Layout(n, style, w, h)
		if r.Y > h || r.Y+r.Height < 0 && r.Height > 0 {
			continue
		}
		if style.Background.A > 0 && r.Width > 0 && r.Height > 0 {
			rl.DrawRectangleRec(r, fade(style.Background, alpha))
		}
		if style.HasBorder && r.Width > 0 && r.Height > 0 {
			rl.DrawRectangleLinesEx(r, 1, fade(style.Border, alpha))
		}
		if n.Text != "" {
			e.drawText(n.Text, r, style, alpha)
		}
	}
}

func (e *Engine) drawText(text string, r rl.Rectangle, style ComputedStyle, alpha float32) {
	size := float32(style.FontSize)
	pad := float32(style.Padding)
	var tw float32
	if e.font.Texture.ID != 0 {
		tw = rl.MeasureTextEx(e.font, text, size, 1).X
	} else {
		tw = float32(rl.MeasureText(text, int32(size)))
	}
	x := r.X + pad
	if style.Center && r.Width > 0 {
		x = r.X + (r.Width-tw)/2
	}
	y := r.Y + pad
	col := fade(style.Color, alpha)
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(x, y), size, 1, col)
	} else {
		rl.DrawText(text, int32(x), int32(y), int32(size), col)
	}
}

// HasStylesheet returns whether a stylesheet with rules is set.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Unload frees the font. Must be called before the window closes.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}
