package door

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/qmuntal/gltf"
)

// ErrNoScene is returned for a document without any node to show.
var ErrNoScene = errors.New("door: model has no nodes")

var identity = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// ParseFile opens a .gltf or .glb file and returns its node hierarchy.
func ParseFile(path string) (*Node, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("door: parse %s: %w", path, err)
	}
	return FromDocument(doc)
}

// FromDocument converts a glTF document into a Node tree under a synthetic root.
// Mesh indices follow raylib's model loader: nodes in document order, one mesh per primitive.
func FromDocument(doc *gltf.Document) (*Node, error) {
	if doc == nil || len(doc.Nodes) == 0 {
		return nil, ErrNoScene
	}
	meshes := meshIndices(doc)
	root := &Node{Name: "scene", Parent: rl.MatrixIdentity()}
	visited := make(map[int]bool, len(doc.Nodes))
	for _, idx := range sceneRoots(doc) {
		if child := buildNode(doc, idx, rl.MatrixIdentity(), meshes, visited); child != nil {
			root.Children = append(root.Children, child)
		}
	}
	if len(root.Children) == 0 {
		return nil, ErrNoScene
	}
	return root, nil
}

// meshIndices assigns raylib mesh slots to every node that references a mesh. raylib only
// builds meshes from triangle primitives, so lines and points take no slot.
func meshIndices(doc *gltf.Document) map[int][]int {
	out := make(map[int][]int)
	next := 0
	for i, n := range doc.Nodes {
		if n == nil || n.Mesh == nil || *n.Mesh < 0 || *n.Mesh >= len(doc.Meshes) {
			continue
		}
		m := doc.Meshes[*n.Mesh]
		if m == nil {
			continue
		}
		for _, p := range m.Primitives {
			if p == nil || p.Mode != gltf.PrimitiveTriangles {
				continue
			}
			out[i] = append(out[i], next)
			next++
		}
	}
	return out
}

// sceneRoots returns the root nodes of the default scene, falling back to every node
// that is nobody's child when the document declares no scenes.
func sceneRoots(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		s := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			s = *doc.Scene
		}
		if doc.Scenes[s] != nil {
			return doc.Scenes[s].Nodes
		}
	}
	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		if n == nil {
			continue
		}
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func buildNode(doc *gltf.Document, idx int, parent rl.Matrix, meshes map[int][]int, visited map[int]bool) *Node {
	if idx < 0 || idx >= len(doc.Nodes) || visited[idx] || doc.Nodes[idx] == nil {
		return nil
	}
	visited[idx] = true
	src := doc.Nodes[idx]
	local, translation, rotZ := localTransform(src)
	n := &Node{
		Name:        src.Name,
		Meshes:      meshes[idx],
		Translation: translation,
		RotationZ:   rotZ,
		Parent:      parent,
	}
	world := rl.MatrixMultiply(local, parent)
	for _, c := range src.Children {
		if child := buildNode(doc, c, world, meshes, visited); child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// localTransform returns the node's local matrix together with its translation and its
// rotation about Z (XYZ Euler order).
func localTransform(n *gltf.Node) (rl.Matrix, [3]float32, float32) {
	if n.Matrix != identity && n.Matrix != ([16]float64{}) {
		var m [16]float32
		for i, v := range n.Matrix {
			m[i] = float32(v)
		}
		mat := rl.Matrix{
			M0: m[0], M1: m[1], M2: m[2], M3: m[3],
			M4: m[4], M5: m[5], M6: m[6], M7: m[7],
			M8: m[8], M9: m[9], M10: m[10], M11: m[11],
			M12: m[12], M13: m[13], M14: m[14], M15: m[15],
		}
		sx := math32.Hypot(mat.M0, math32.Hypot(mat.M1, mat.M2))
		sy := math32.Hypot(mat.M4, math32.Hypot(mat.M5, mat.M6))
		sz := math32.Hypot(mat.M8, math32.Hypot(mat.M9, mat.M10))
		rotZ := eulerZ(safeDiv(mat.M0, sx), safeDiv(mat.M4, sy), safeDiv(mat.M8, sz))
		return mat, [3]float32{mat.M12, mat.M13, mat.M14}, rotZ
	}

	t := [3]float32{float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2])}
	qx, qy, qz, qw := float32(n.Rotation[0]), float32(n.Rotation[1]), float32(n.Rotation[2]), float32(n.Rotation[3])
	if qx == 0 && qy == 0 && qz == 0 && qw == 0 {
		qw = 1
	}
	s := [3]float32{float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2])}
	if s == ([3]float32{}) {
		s = [3]float32{1, 1, 1}
	}

	r00 := 1 - 2*(qy*qy+qz*qz)
	r01 := 2 * (qx*qy - qw*qz)
	r02 := 2 * (qx*qz + qw*qy)

	scale := rl.MatrixScale(s[0], s[1], s[2])
	rot := rl.QuaternionToMatrix(rl.NewQuaternion(qx, qy, qz, qw))
	trans := rl.MatrixTranslate(t[0], t[1], t[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans), t, eulerZ(r00, r01, r02)
}

// eulerZ extracts the Z angle of an XYZ Euler decomposition from the first row of a rotation matrix.
func eulerZ(r00, r01, r02 float32) float32 {
	if math32.Abs(r02) >= 0.9999999 {
		return 0
	}
	return math32.Atan2(-r01, r00)
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
