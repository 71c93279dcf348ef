// Package door loads the garage door model and decides which of its meshes animate.
package door

import rl "github.com/gen2brain/raylib-go/raylib"

// Node is one node of a loaded model hierarchy, reduced to what the scene needs.
// Meshes holds the indices of the raylib model meshes produced by this node (one per primitive).
// Parent is the model-space transform of the parent node, used to turn local offsets into model space.
type Node struct {
	Name          string
	Meshes        []int
	Translation   [3]float32
	RotationZ     float32
	Parent        rl.Matrix
	CastShadow    bool
	ReceiveShadow bool
	Children      []*Node
}

// IsMesh reports whether the node carries geometry.
func (n *Node) IsMesh() bool {
	return len(n.Meshes) > 0
}

// Walk visits root and all descendants depth first, parents before children.
func Walk(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}
	fn(root)
	for _, c := range root.Children {
		Walk(c, fn)
	}
}

// ToModel rotates and scales a local-space offset of this node into model space.
func (n *Node) ToModel(local [3]float32) [3]float32 {
	m := n.Parent
	return [3]float32{
		m.M0*local[0] + m.M4*local[1] + m.M8*local[2],
		m.M1*local[0] + m.M5*local[1] + m.M9*local[2],
		m.M2*local[0] + m.M6*local[1] + m.M10*local[2],
	}
}
