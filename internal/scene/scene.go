// Package scene owns the camera, the door and the branding plane, and draws them.
// Only the render thread touches a Scene.
package scene

import (
	"context"
	"image"
	"unsafe"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"garage-door/internal/animation"
	"garage-door/internal/door"
	"garage-door/internal/layout"
	"garage-door/internal/primitives"
	"garage-door/internal/procedural"
)

// Options configures a scene.
type Options struct {
	Layout     layout.Profiles
	Animation  animation.Params
	Camera     animation.CameraParams
	Door       procedural.Options
	Light      primitives.Lighting
	Background rl.Color
	Fovy       float32
	Near, Far  float64
}

// DefaultOptions returns the showroom look: dark slate background and a 75° lens.
func DefaultOptions() Options {
	return Options{
		Layout:     layout.Default(),
		Animation:  animation.DefaultParams(),
		Camera:     animation.DefaultCameraParams(),
		Door:       procedural.DefaultOptions(),
		Light:      primitives.DefaultLighting(),
		Background: rl.NewColor(0x0f, 0x17, 0x2a, 255),
		Fovy:       75,
		Near:       0.1,
		Far:        1000,
	}
}

// Logger is the subset of the app logger the scene reports to.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Input is one frame of user input relevant to the 3D view.
type Input struct {
	DragX float32
}

// Scene holds the 3D camera and the door. Update runs camera logic once per frame;
// Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera   rl.Camera3D
	Profile  layout.Profile
	Controls Controls
	Panels   []*animation.Panel

	opts     Options
	width    int
	mapper   *animation.Mapper
	rig      *animation.Rig
	fraction float32
	log      Logger

	loader  *door.Loader
	pending <-chan door.Result
	result  *door.Result
	nodes   []*door.Node       // per panel; nil for procedural panels
	owner   map[int]int        // model mesh index -> panel index
	meshes  map[int]*door.Node // model mesh index -> producing node

	reg           *primitives.Registry
	doorMtl       primitives.Material
	model         rl.Model
	modelLoaded   bool
	modelPending  bool
	overlayImg    image.Image
	overlayTex    rl.Texture2D
	overlayLoaded bool
}

// New returns a scene with the camera at the profile distance for width. No GPU work happens
// until the first Draw.
func New(opts Options, width int, log Logger) *Scene {
	s := &Scene{
		Controls: DefaultControls(),
		opts:     opts,
		mapper:   animation.NewMapper(opts.Animation),
		log:      log,
		reg:      primitives.NewRegistry(opts.Light),
	}
	mtl, err := primitives.ParseMaterial(opts.Door.Color, opts.Door.Specular, opts.Door.Shininess)
	if err != nil {
		s.errorf("Door material: %v", err)
		mtl = primitives.Material{Color: rl.DarkGray, Specular: rl.Gray, Shininess: 30}
	}
	s.doorMtl = mtl
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = opts.Fovy
	s.Camera.Projection = rl.CameraPerspective
	s.width = -1
	s.Profile = opts.Layout.Select(width)
	s.rig = animation.NewRig(opts.Camera, s.Profile.CameraDistance)
	s.Resize(width)
	return s
}

// Load starts loading the door in the background. The result is picked up by Update.
func (s *Scene) Load(ctx context.Context, l *door.Loader, fetch door.Fetch) {
	s.loader = l
	s.pending = l.Start(ctx, fetch)
}

// Await makes Update pick up a result from ch.
func (s *Scene) Await(ch <-chan door.Result) {
	s.pending = ch
}

// Loaded reports whether the load result has been applied.
func (s *Scene) Loaded() bool {
	return s.result != nil
}

// Result returns the applied load result, or nil while loading.
func (s *Scene) Result() *door.Result {
	return s.result
}

// Fraction returns the last scroll fraction handed to SetFraction.
func (s *Scene) Fraction() float32 {
	return s.fraction
}

// SetOverlay sets the branding bitmap. It is uploaded on the next Draw.
func (s *Scene) SetOverlay(img image.Image) {
	s.overlayImg = img
}

// Resize re-selects the layout profile for width and puts the camera back at the profile
// distance. Panels are left alone. Returns false when width did not change.
func (s *Scene) Resize(width int) bool {
	if width == s.width {
		return false
	}
	s.width = width
	prev := s.Profile.Name
	s.Profile = s.opts.Layout.Select(width)
	s.rig.Snap(s.Profile.CameraDistance)
	s.updateCamera()
	if prev != s.Profile.Name {
		s.infof("Layout profile: %s (width %d)", s.Profile.Name, width)
	}
	return true
}

// Reconfigure applies new layout and animation settings without reloading the door.
func (s *Scene) Reconfigure(l layout.Profiles, a animation.Params, c animation.CameraParams) {
	s.opts.Layout, s.opts.Animation, s.opts.Camera = l, a, c
	s.mapper = animation.NewMapper(a)
	s.rig.Params = c
	w := s.width
	s.width = -1
	s.Resize(w)
	s.mapper.Apply(s.Panels, s.fraction)
}

// SetFraction maps a new scroll fraction onto the panels.
func (s *Scene) SetFraction(f float32) {
	s.fraction = f
	s.mapper.Apply(s.Panels, f)
}

// Update runs once per frame: control damping, load pickup, then camera smoothing.
func (s *Scene) Update(in Input) {
	s.Controls.Update(in.DragX)
	s.poll()
	s.rig.Step(s.fraction, s.Profile.CameraDistance)
	s.updateCamera()
}

func (s *Scene) poll() {
	if s.pending == nil {
		return
	}
	select {
	case res := <-s.pending:
		s.pending = nil
		s.adopt(res)
	default:
	}
}

// adopt takes ownership of a load result. GPU uploads wait for Draw.
func (s *Scene) adopt(res door.Result) {
	s.result = &res
	s.Panels = res.Panels
	s.nodes = make([]*door.Node, len(res.Panels))
	s.owner = make(map[int]int)
	s.meshes = make(map[int]*door.Node)
	if res.Root != nil {
		door.Walk(res.Root, func(n *door.Node) {
			for _, m := range n.Meshes {
				s.meshes[m] = n
			}
		})
		for i, p := range res.Panels {
			if len(p.Meshes) > 0 {
				s.nodes[i] = s.meshes[p.Meshes[0]]
			}
			for _, m := range p.Meshes {
				s.owner[m] = i
			}
		}
		s.modelPending = true
	}
	if res.Err != nil {
		s.errorf("Door load: %s: %v", res.Outcome, res.Err)
	}
	s.infof("Door ready: %s, %d panels", res.Outcome, len(res.Panels))
	s.mapper.Apply(s.Panels, s.fraction)
}

func (s *Scene) updateCamera() {
	look := s.rig.LookAt(s.Profile.LookAtY)
	target := rl.NewVector3(look[0], look[1], look[2])
	pos := rl.NewVector3(0, s.rig.Y, s.rig.Z)
	if yaw := s.Controls.Yaw(); yaw != 0 {
		dx, dz := pos.X-target.X, pos.Z-target.Z
		sin, cos := math32.Sincos(yaw)
		pos.X = target.X + dx*cos + dz*sin
		pos.Z = target.Z - dx*sin + dz*cos
	}
	s.Camera.Position = pos
	s.Camera.Target = target
}

// ensureUploaded runs the deferred GPU work: the model and the overlay texture.
func (s *Scene) ensureUploaded() {
	if s.modelPending {
		s.modelPending = false
		s.uploadModel()
	}
	if s.overlayImg != nil {
		if s.overlayLoaded {
			rl.UnloadTexture(s.overlayTex)
		}
		img := rl.NewImageFromImage(s.overlayImg)
		s.overlayTex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		rl.SetTextureFilter(s.overlayTex, rl.FilterBilinear)
		s.overlayLoaded = rl.IsTextureValid(s.overlayTex)
		s.overlayImg = nil
	}
}

func (s *Scene) uploadModel() {
	m := rl.LoadModel(s.result.Source)
	if !rl.IsModelValid(m) || m.MeshCount == 0 {
		s.errorf("raylib could not load %s", s.result.Source)
		rl.UnloadModel(m)
		if s.loader != nil {
			s.adopt(s.loader.Resolve(s.result.Source, nil, door.ErrNoScene))
		}
		return
	}
	if want := s.maxMesh() + 1; int(m.MeshCount) < want {
		s.errorf("Model has %d meshes, hierarchy expects %d", m.MeshCount, want)
	}
	shader := s.reg.ModelShader()
	if rl.IsShaderValid(shader) {
		mats := unsafe.Slice(m.Materials, m.MaterialCount)
		for i := range mats {
			mats[i].Shader = shader
		}
	}
	s.model = m
	s.modelLoaded = true
}

func (s *Scene) maxMesh() int {
	hi := -1
	for m := range s.owner {
		hi = max(hi, m)
	}
	return hi
}

// Draw renders the 3D scene: shadow casters into the light's depth map, then the lit pass.
// Call after ClearBackground and before the 2D overlay.
func (s *Scene) Draw() {
	s.ensureUploaded()
	if s.result != nil && s.reg.BeginShadowPass() {
		s.drawDoor()
		s.reg.EndShadowPass()
	}
	rl.SetClipPlanes(s.opts.Near, s.opts.Far)
	rl.BeginMode3D(s.Camera)
	p := s.Camera.Position
	s.reg.SetView([3]float32{p.X, p.Y, p.Z})
	if s.result != nil {
		s.drawDoor()
		s.drawOverlays()
	}
	rl.EndMode3D()
}

// drawDoor draws the model and the procedural panels into whichever pass is active.
func (s *Scene) drawDoor() {
	if s.modelLoaded {
		s.drawModel()
	}
	for i, pp := range s.result.Procedural {
		cur := animation.Transform{Y: pp.Position[1], Z: pp.Position[2]}
		if i < len(s.Panels) {
			cur = s.Panels[i].Current
		}
		s.reg.Draw(primitives.Box, BoxMatrix(pp, cur), s.doorMtl)
	}
}

// meshShadow returns the shadow flags of the node that produced model mesh i. Meshes outside
// the parsed hierarchy neither cast nor receive.
func (s *Scene) meshShadow(i int) (cast, receive bool) {
	n := s.meshes[i]
	if n == nil {
		return false, false
	}
	return n.CastShadow, n.ReceiveShadow
}

func (s *Scene) drawModel() {
	model := ModelMatrix(s.Profile)
	meshes := unsafe.Slice(s.model.Meshes, s.model.MeshCount)
	mats := unsafe.Slice(s.model.Materials, s.model.MaterialCount)
	meshMat := unsafe.Slice(s.model.MeshMaterial, s.model.MeshCount)
	casting := s.reg.Casting()
	for i := range meshes {
		cast, receive := s.meshShadow(i)
		if casting && !cast {
			continue
		}
		var off [3]float32
		if pi, ok := s.owner[i]; ok {
			off = PanelOffset(s.nodes[pi], s.Panels[pi])
		}
		transform := MeshMatrix(off, model)
		if casting {
			s.reg.DrawCaster(meshes[i], transform)
			continue
		}
		mi := int(meshMat[i])
		if mi < 0 || mi >= len(mats) {
			mi = 0
		}
		mat := mats[mi]
		s.reg.SetUniforms(mat.Shader, primitives.ModelMaterial, receive)
		rl.DrawMesh(meshes[i], mat, transform)
	}
}

func (s *Scene) drawOverlays() {
	if !s.overlayLoaded {
		return
	}
	rl.DisableBackfaceCulling()
	for _, pl := range s.result.Overlays {
		parent := rl.MatrixIdentity()
		if pl.Attached {
			if !s.modelLoaded {
				continue
			}
			parent = ModelMatrix(s.Profile)
		}
		s.reg.DrawWithTexture(primitives.Plane, OverlayMatrix(pl, parent), s.overlayTex)
	}
	rl.EnableBackfaceCulling()
}

// Background is the clear colour.
func (s *Scene) Background() rl.Color {
	return s.opts.Background
}

// Unload frees GPU resources. Must be called before the window closes.
func (s *Scene) Unload() {
	if s.modelLoaded {
		rl.UnloadModel(s.model)
		s.modelLoaded = false
	}
	if s.overlayLoaded {
		rl.UnloadTexture(s.overlayTex)
		s.overlayLoaded = false
	}
	s.reg.Unload()
}

func (s *Scene) infof(format string, args ...any) {
	if s.log != nil {
		s.log.Infof(format, args...)
	}
}

func (s *Scene) errorf(format string, args ...any) {
	if s.log != nil {
		s.log.Errorf(format, args...)
	}
}
