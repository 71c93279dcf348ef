package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayAlphaCutoff is the alpha below which decal texels are discarded.
const OverlayAlphaCutoff = 0.1

// shadowSlot is the texture unit the shadow map stays bound to during the lit pass.
const shadowSlot = 10

// cached holds mesh and material for a primitive type. Created lazily on first Draw.
// decalMtl is used when drawing with an albedo texture (same mesh, different material).
type cached struct {
	mesh     rl.Mesh
	mtl      rl.Material
	decalMtl rl.Material
}

// Registry maps primitive type names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	light    Lighting
	viewPos  [3]float32 // camera position, set each frame for specular
	lit      rl.Shader
	textured rl.Shader
	decal    rl.Shader
	depth    rl.Shader
	depthMtl rl.Material
	loaded   bool

	shadowMap   rl.RenderTexture2D
	shadowTried bool
	shadowReady bool // the map holds this frame's depth
	casting     bool // between BeginShadowPass and EndShadowPass
}

// NewRegistry returns a registry with no primitives, lit by light.
func NewRegistry(light Lighting) *Registry {
	return &Registry{cache: make(map[string]cached), light: light}
}

// SetView sets the camera position for this frame. Call once per frame before drawing.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

// Box and Plane are the primitive types the scene draws.
const (
	Box   = "box"
	Plane = "plane"
)

func (r *Registry) shaders() {
	if r.loaded {
		return
	}
	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	r.textured = rl.LoadShaderFromMemory(litVS, litTexturedFS)
	r.decal = rl.LoadShaderFromMemory(litVS, unlitTexturedFS)
	r.depth = rl.LoadShaderFromMemory(depthVS, depthFS)
	r.depthMtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.depth) {
		r.depthMtl.Shader = r.depth
	}
	r.loaded = true
}

// ModelShader returns the textured lit shader, loading it on first use. Loaded models are drawn
// with it so they share the scene's lights.
func (r *Registry) ModelShader() rl.Shader {
	r.shaders()
	return r.textured
}

// ensure creates the mesh for key if not yet cached. Box is a unit cube; Plane is 1×1 in XZ
// facing +Y.
func (r *Registry) ensure(key string) bool {
	if _, ok := r.cache[key]; ok {
		return true
	}
	var mesh rl.Mesh
	switch key {
	case Box:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Plane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return false
	}
	r.shaders()
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.lit) {
		mtl.Shader = r.lit
	}
	decalMtl := rl.LoadMaterialDefault()
	if albedo := decalMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if rl.IsShaderValid(r.decal) {
		decalMtl.Shader = r.decal
	}
	r.cache[key] = cached{mesh: mesh, mtl: mtl, decalMtl: decalMtl}
	return true
}

// ensureShadowMap creates the depth-only framebuffer once. Returns false when shadows are off
// or the driver refused the target.
func (r *Registry) ensureShadowMap() bool {
	if r.shadowTried {
		return r.shadowMap.ID > 0
	}
	r.shadowTried = true
	size := r.light.Shadow.Size
	if size <= 0 {
		return false
	}
	id := rl.LoadFramebuffer()
	if id == 0 {
		return false
	}
	rl.EnableFramebuffer(id)
	depth := rl.LoadTextureDepth(size, size, false)
	rl.FramebufferAttach(id, depth, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)
	ok := rl.FramebufferComplete(id)
	rl.DisableFramebuffer()
	if !ok {
		rl.UnloadFramebuffer(id)
		return false
	}
	// BeginTextureMode sizes the viewport from the colour texture, which this target lacks.
	r.shadowMap = rl.RenderTexture2D{
		ID:      id,
		Texture: rl.Texture2D{Width: size, Height: size},
		Depth:   rl.Texture2D{ID: depth, Width: size, Height: size, Mipmaps: 1},
	}
	return true
}

// BeginShadowPass starts rendering shadow casters into the light's depth map. Draw calls until
// EndShadowPass write depth only. Returns false, with nothing begun, when shadows are off.
func (r *Registry) BeginShadowPass() bool {
	r.shadowReady = false
	r.shaders()
	if !r.ensureShadowMap() {
		return false
	}
	s := r.light.Shadow
	rl.SetClipPlanes(float64(s.Near), float64(s.Far))
	rl.BeginTextureMode(r.shadowMap)
	rl.ClearBackground(rl.White)
	rl.BeginMode3D(r.light.LightCamera())
	r.casting = true
	return true
}

// EndShadowPass finishes the depth map and binds it for the lit pass. The caller restores its
// own clip planes before BeginMode3D.
func (r *Registry) EndShadowPass() {
	if !r.casting {
		return
	}
	rl.EndMode3D()
	rl.EndTextureMode()
	r.casting = false
	rl.ActiveTextureSlot(shadowSlot)
	rl.EnableTexture(r.shadowMap.Depth.ID)
	rl.ActiveTextureSlot(0)
	r.shadowReady = true
}

// Casting reports whether draws currently go to the shadow map.
func (r *Registry) Casting() bool {
	return r.casting
}

// DrawCaster writes mesh into the shadow map. It is a no-op outside a shadow pass.
func (r *Registry) DrawCaster(mesh rl.Mesh, transform rl.Matrix) {
	if !r.casting {
		return
	}
	rl.DrawMesh(mesh, r.depthMtl, transform)
}

// SetUniforms uploads the light rig, view position, surface parameters and shadow state to
// shader. receive selects whether the surface samples the shadow map.
func (r *Registry) SetUniforms(shader rl.Shader, m Material, receive bool) {
	if !rl.IsShaderValid(shader) {
		return
	}
	// cgo-safe: local arrays
	viewPos := r.viewPos
	sunDir := r.light.SunDirection()
	sun := scaled(r.light.SunColor, r.light.SunIntensity)
	amb := r.light.AmbientTerm()
	pointPos := r.light.PointPosition
	point := scaled(r.light.PointColor, r.light.PointIntensity)
	spec := scaled(m.Specular, 1)
	set := func(name string, v []float32, typ rl.ShaderUniformDataType) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, typ, 1)
		}
	}
	set("viewPos", viewPos[:], rl.ShaderUniformVec3)
	set("lightDir", sunDir[:], rl.ShaderUniformVec3)
	set("lightColor", sun[:], rl.ShaderUniformVec3)
	set("ambient", amb[:], rl.ShaderUniformVec4)
	set("pointPos", pointPos[:], rl.ShaderUniformVec3)
	set("pointColor", point[:], rl.ShaderUniformVec3)
	set("pointRange", []float32{r.light.PointRange}, rl.ShaderUniformFloat)
	set("specularColor", spec[:], rl.ShaderUniformVec3)
	set("shininess", []float32{m.Shininess}, rl.ShaderUniformFloat)

	on := receive && r.shadowReady
	set("receiveShadow", []float32{boolf(on)}, rl.ShaderUniformFloat)
	if !on {
		return
	}
	if loc := rl.GetShaderLocation(shader, "lightVP"); loc >= 0 {
		rl.SetShaderValueMatrix(shader, loc, r.light.LightViewProj())
	}
	// ShaderUniformInt reads the slice's raw bits.
	set("shadowMap", []float32{math32.Float32frombits(shadowSlot)}, rl.ShaderUniformInt)
	set("shadowTexel", []float32{1 / float32(r.light.Shadow.Size)}, rl.ShaderUniformFloat)
	set("shadowBias", []float32{r.light.Shadow.Bias}, rl.ShaderUniformFloat)
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// Draw draws one instance of primType with the given model transform and material. The surface
// casts and receives shadows. Must be called between BeginMode3D and EndMode3D. Unknown types
// are skipped.
func (r *Registry) Draw(primType string, transform rl.Matrix, m Material) {
	if !r.ensure(primType) {
		return
	}
	c := r.cache[primType]
	if r.casting {
		r.DrawCaster(c.mesh, transform)
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = m.Color
	}
	r.SetUniforms(c.mtl.Shader, m, true)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// DrawWithTexture draws primType unlit with tex as albedo, dropping texels below
// OverlayAlphaCutoff. Falls back to a lit white draw when tex is not valid. Decals neither cast
// nor receive shadows.
func (r *Registry) DrawWithTexture(primType string, transform rl.Matrix, tex rl.Texture2D) {
	if r.casting {
		return
	}
	if !rl.IsTextureValid(tex) {
		r.Draw(primType, transform, ModelMaterial)
		return
	}
	if !r.ensure(primType) {
		return
	}
	c := r.cache[primType]
	rl.SetMaterialTexture(&c.decalMtl, rl.MapAlbedo, tex)
	if loc := rl.GetShaderLocation(c.decalMtl.Shader, "alphaCutoff"); loc >= 0 {
		rl.SetShaderValue(c.decalMtl.Shader, loc, []float32{OverlayAlphaCutoff}, rl.ShaderUniformFloat)
	}
	rl.DrawMesh(c.mesh, c.decalMtl, transform)
}

// Unload frees cached meshes, shaders and the shadow map. Must be called before the window
// closes.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.shadowMap.ID > 0 {
		rl.UnloadFramebuffer(r.shadowMap.ID)
		r.shadowMap = rl.RenderTexture2D{}
	}
	r.shadowTried = false
	r.shadowReady = false
	if r.loaded {
		rl.UnloadShader(r.lit)
		rl.UnloadShader(r.textured)
		rl.UnloadShader(r.decal)
		rl.UnloadShader(r.depth)
		r.loaded = false
	}
}
