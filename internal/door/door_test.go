package door

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/qmuntal/gltf"

	"garage-door/internal/procedural"
)

type recordLog struct {
	info, errs []string
}

func (r *recordLog) Infof(format string, args ...any) {
	r.info = append(r.info, fmt.Sprintf(format, args...))
}
func (r *recordLog) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func mesh(name string, idx int, y, z float32) *Node {
	return &Node{Name: name, Meshes: []int{idx}, Translation: [3]float32{0, y, z}}
}

func countingLoader(log Logger) (*Loader, *int) {
	calls := 0
	l := NewLoader(log, nil, procedural.DefaultOptions())
	l.Generate = func(o procedural.Options) []procedural.Panel {
		calls++
		return procedural.GeneratePanels(o)
	}
	return l, &calls
}

func TestDefaultClassifier(t *testing.T) {
	c := DefaultClassifier()
	tests := []struct {
		name string
		want bool
	}{
		{"Door_Panel_01", true},
		{"garage_door", true},
		{"slat_3", true},
		{"rolling-gate_mesh", true},
		{"Door_Frame", false},
		{"doorframe", false},
		{"Handle", false},
		{"PANEL", false},
	}
	for _, tt := range tests {
		if got := c(MeshInfo{Name: tt.name}); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveWithPanelsSkipsFallback(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		mesh("Door_Frame", 0, 0, 0),
		mesh("Door_Panel_A", 1, 2, 0.5),
		{Name: "group", Children: []*Node{mesh("slat_1", 2, 4, 0.25), mesh("Handle", 3, 0, 0)}},
	}}
	log := &recordLog{}
	l, calls := countingLoader(log)
	res := l.Resolve("scene.gltf", root, nil)

	if *calls != 0 {
		t.Fatalf("procedural generator ran %d times on the success path", *calls)
	}
	if res.Outcome != LoadedWithPanels || res.UsesProcedural() {
		t.Fatalf("outcome = %v, procedural = %v", res.Outcome, res.UsesProcedural())
	}
	if len(res.Panels) != 2 || res.Panels[0].Name != "Door_Panel_A" || res.Panels[1].Name != "slat_1" {
		t.Fatalf("panels = %+v", res.Panels)
	}
	if b := res.Panels[1].Baseline; b.Y != 4 || b.Z != 0.25 {
		t.Errorf("baseline = %+v", b)
	}
	if len(res.Overlays) != 1 || !res.Overlays[0].Attached {
		t.Errorf("overlays = %+v, want one attached to the model", res.Overlays)
	}
	Walk(root, func(n *Node) {
		if n.IsMesh() && (!n.CastShadow || !n.ReceiveShadow) {
			t.Errorf("mesh %s has shadows off", n.Name)
		}
	})
}

func TestResolveReclassifiesAllMeshes(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		mesh("Cube", 0, 0, 0),
		{Name: "empty"},
		mesh("Cube.001", 1, 3, 0),
		mesh("Frame", 2, 0, 0),
	}}
	l, calls := countingLoader(&recordLog{})
	res := l.Resolve("scene.gltf", root, nil)

	if res.Outcome != LoadedWithoutPanels {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if *calls != 0 {
		t.Errorf("procedural generator ran")
	}
	if got, want := len(res.Panels), 3; got != want {
		t.Errorf("got %d panels, want every mesh (%d)", got, want)
	}
	for i, p := range res.Panels {
		if p.Index != i {
			t.Errorf("panel %d has index %d", i, p.Index)
		}
	}
}

func TestResolveEmptyModelFallsBack(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{{Name: "camera"}}}
	l, calls := countingLoader(&recordLog{})
	res := l.Resolve("scene.gltf", root, nil)

	if *calls != 1 {
		t.Fatalf("generator ran %d times, want 1", *calls)
	}
	if !errors.Is(res.Err, ErrNoMeshes) {
		t.Errorf("err = %v, want ErrNoMeshes", res.Err)
	}
	if len(res.Panels) != 8 {
		t.Errorf("got %d panels, want 8", len(res.Panels))
	}
	if len(res.Overlays) != 2 || !res.Overlays[0].Attached || res.Overlays[1].Attached {
		t.Errorf("overlays = %+v, want model overlay plus scene overlay", res.Overlays)
	}
}

func TestLoadFailureUsesProceduralDoor(t *testing.T) {
	log := &recordLog{}
	l, calls := countingLoader(log)
	boom := errors.New("network down")
	res := l.Load(context.Background(), func(context.Context) (string, error) { return "", boom })

	if res.Outcome != Failed || !errors.Is(res.Err, boom) {
		t.Fatalf("outcome = %v, err = %v", res.Outcome, res.Err)
	}
	if *calls != 1 || len(res.Procedural) != 8 || len(res.Panels) != 8 {
		t.Fatalf("calls=%d procedural=%d panels=%d", *calls, len(res.Procedural), len(res.Panels))
	}
	seen := map[float32]bool{}
	for i, p := range res.Panels {
		if seen[p.Baseline.Y] {
			t.Errorf("panel %d shares Y %v", i, p.Baseline.Y)
		}
		seen[p.Baseline.Y] = true
	}
	if len(res.Overlays) != 1 || res.Overlays[0].Attached {
		t.Errorf("overlays = %+v, want one on the scene root", res.Overlays)
	}
	if res.Root != nil {
		t.Error("failed load should not carry a model root")
	}
	if len(log.errs) == 0 {
		t.Error("failure was not reported")
	}
}

func TestLoadParseError(t *testing.T) {
	l, _ := countingLoader(nil)
	l.Parse = func(string) (*Node, error) { return nil, errors.New("bad json") }
	res := <-l.Start(context.Background(), func(context.Context) (string, error) { return "scene.gltf", nil })
	if res.Outcome != Failed || res.Source != "scene.gltf" {
		t.Errorf("outcome = %v source = %q", res.Outcome, res.Source)
	}
}

func TestCustomClassifier(t *testing.T) {
	root := &Node{Children: []*Node{mesh("tagged", 0, 0, 0), mesh("Door", 1, 0, 0)}}
	l := NewLoader(nil, func(m MeshInfo) bool { return m.Name == "tagged" }, procedural.DefaultOptions())
	res := l.Resolve("", root, nil)
	if len(res.Panels) != 1 || res.Panels[0].Name != "tagged" {
		t.Errorf("panels = %+v", res.Panels)
	}
}

func TestFromDocument(t *testing.T) {
	s := float32(math.Sqrt2 / 2)
	doc := &gltf.Document{
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
		Nodes: []*gltf.Node{
			{Name: "Sketchfab_model", Children: []int{1, 2}, Scale: [3]float64{2, 2, 2}, Rotation: [4]float64{0, 0, 0, 1}},
			{Name: "Door_Panel", Mesh: gltf.Index(0), Translation: [3]float64{0, 1.5, -0.25}, Rotation: [4]float64{0, 0, float64(s), float64(s)}},
			{Name: "Frame", Mesh: gltf.Index(1), Rotation: [4]float64{0, 0, 0, 1}},
		},
		Meshes: []*gltf.Mesh{
			{Primitives: []*gltf.Primitive{{}, {}}},
			{Primitives: []*gltf.Primitive{{}}},
		},
	}
	root, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if len(root.Children) != 1 || len(root.Children[0].Children) != 2 {
		t.Fatalf("unexpected tree shape")
	}
	panel := root.Children[0].Children[0]
	if len(panel.Meshes) != 2 || panel.Meshes[0] != 0 || panel.Meshes[1] != 1 {
		t.Errorf("panel meshes = %v, want [0 1]", panel.Meshes)
	}
	if frame := root.Children[0].Children[1]; len(frame.Meshes) != 1 || frame.Meshes[0] != 2 {
		t.Errorf("frame meshes = %v, want [2]", frame.Meshes)
	}
	if panel.Translation != [3]float32{0, 1.5, -0.25} {
		t.Errorf("translation = %v", panel.Translation)
	}
	if math.Abs(float64(panel.RotationZ)-math.Pi/2) > 1e-4 {
		t.Errorf("rotation Z = %v, want pi/2", panel.RotationZ)
	}
	if got := panel.ToModel([3]float32{0, 0, 1}); math.Abs(float64(got[2])-2) > 1e-5 {
		t.Errorf("ToModel = %v, want z scaled by parent to 2", got)
	}
}

func TestFromDocumentEmpty(t *testing.T) {
	if _, err := FromDocument(&gltf.Document{}); !errors.Is(err, ErrNoScene) {
		t.Errorf("err = %v, want ErrNoScene", err)
	}
}

func TestMeshIndicesSkipNonTriangles(t *testing.T) {
	doc := &gltf.Document{
		Nodes: []*gltf.Node{
			{Name: "Door_Top", Mesh: gltf.Index(0)},
			{Name: "Guide_Lines", Mesh: gltf.Index(1)},
			{Name: "Door_Bottom", Mesh: gltf.Index(2)},
		},
		Meshes: []*gltf.Mesh{
			{Primitives: []*gltf.Primitive{{Mode: gltf.PrimitiveLines}, {Mode: gltf.PrimitiveTriangles}}},
			{Primitives: []*gltf.Primitive{{Mode: gltf.PrimitivePoints}}},
			{Primitives: []*gltf.Primitive{{}}},
		},
	}
	got := meshIndices(doc)
	if m := got[0]; len(m) != 1 || m[0] != 0 {
		t.Errorf("Door_Top meshes = %v, want [0]", m)
	}
	if m, ok := got[1]; ok {
		t.Errorf("Guide_Lines got slots %v, want none", m)
	}
	if m := got[2]; len(m) != 1 || m[0] != 1 {
		t.Errorf("Door_Bottom meshes = %v, want [1]", m)
	}
}
