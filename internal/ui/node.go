package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, link. It has optional class and id for CSS matching,
// bounds (position and size), and optional text for labels.
// Opacity and OffsetY are runtime adjustments on top of the stylesheet (fades and slide-ins).
// Positioned nodes ignore the stylesheet's left/top and use Bounds.X/Y as set by their owner.
type Node struct {
	Type       string // "panel", "label", "link"
	Class      string
	ID         string
	Bounds     rl.Rectangle
	Text       string
	Href       string // for links, e.g. "#contact"
	Opacity    float32
	OffsetY    float32
	Hidden     bool
	Positioned bool
}

// NewNode creates a fully opaque node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:    typ,
		Class:   class,
		ID:      id,
		Text:    text,
		Opacity: 1,
	}
}

// NewLink creates a link node pointing at href.
func NewLink(class, text, href string) *Node {
	n := NewNode("link", class, "", text)
	n.Href = href
	return n
}
