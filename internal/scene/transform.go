package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"garage-door/internal/animation"
	"garage-door/internal/door"
	"garage-door/internal/layout"
	"garage-door/internal/overlay"
	"garage-door/internal/procedural"
)

// ModelMatrix places a loaded model for the given profile: uniform scale, then translation.
func ModelMatrix(p layout.Profile) rl.Matrix {
	s := p.ModelScale
	if s == 0 {
		s = 1
	}
	return rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixTranslate(p.ModelPosition[0], p.ModelPosition[1], p.ModelPosition[2]))
}

// OverlayMatrix places the branding plane. raylib planes already lie in XZ facing +Y, which is
// where an XY plane ends up after a -π/2 turn about X, so only the remainder is applied.
// parent is the model matrix for attached placements and identity otherwise.
func OverlayMatrix(p overlay.Placement, parent rl.Matrix) rl.Matrix {
	m := rl.MatrixScale(p.Size[0], 1, p.Size[1])
	if r := p.RotationX + math32.Pi/2; r != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateX(r))
	}
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(p.Offset[0], p.Offset[1], p.Offset[2]))
	return rl.MatrixMultiply(m, parent)
}

// BoxMatrix places one procedural panel at its animated transform.
func BoxMatrix(p procedural.Panel, cur animation.Transform) rl.Matrix {
	m := rl.MatrixScale(p.Size[0], p.Size[1], p.Size[2])
	if cur.RotZ != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateZ(cur.RotZ))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(p.Position[0], cur.Y, cur.Z))
}

// PanelOffset is the model-space translation of a model panel away from its baseline.
// The node's offset lives in its parent's space, so it is carried through the parent transform.
func PanelOffset(n *door.Node, p *animation.Panel) [3]float32 {
	off := p.Offset()
	if n == nil {
		return [3]float32{0, off.Y, off.Z}
	}
	return n.ToModel([3]float32{0, off.Y, off.Z})
}

// MeshMatrix is the draw transform of one model mesh displaced by offset.
func MeshMatrix(offset [3]float32, model rl.Matrix) rl.Matrix {
	if offset == ([3]float32{}) {
		return model
	}
	return rl.MatrixMultiply(rl.MatrixTranslate(offset[0], offset[1], offset[2]), model)
}
